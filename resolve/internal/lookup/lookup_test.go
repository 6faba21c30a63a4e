package lookup

import (
	"errors"
	"sync"
	"testing"
)

func TestDo(t *testing.T) {
	c := &Cache{}
	calls := 0

	for i := 0; i < 3; i++ {
		v, err := c.Do("key", func() (interface{}, error) {
			calls++
			return "value", nil
		})
		if err != nil {
			t.Fatalf("Do() error = %v", err)
		}
		if v != "value" {
			t.Errorf("Do() = %v, want %q", v, "value")
		}
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestDoCachesError(t *testing.T) {
	c := &Cache{}
	calls := 0
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		if _, err := c.Do("key", func() (interface{}, error) {
			calls++
			return nil, boom
		}); err != boom {
			t.Fatalf("Do() error = %v, want %v", err, boom)
		}
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestDoSeparateKeys(t *testing.T) {
	c := &Cache{}
	calls := 0

	for _, key := range []string{"a", "b"} {
		if _, err := c.Do(key, func() (interface{}, error) {
			calls++
			return key, nil
		}); err != nil {
			t.Fatalf("Do(%q) error = %v", key, err)
		}
	}
	if calls != 2 {
		t.Errorf("fn called %d times, want 2", calls)
	}
}

func TestDoConcurrent(t *testing.T) {
	c := &Cache{}
	var mu sync.Mutex
	calls := 0

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Do("key", func() (interface{}, error) {
				mu.Lock()
				calls++
				mu.Unlock()
				return 1, nil
			})
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}
