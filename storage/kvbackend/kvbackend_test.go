package kvbackend

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/weft/weft/storage"
)

func testBackends(t *testing.T, test func(t *testing.T, kv storage.KVBackend)) {
	t.Run("Memory", func(t *testing.T) {
		test(t, &Memory{})
	})
	t.Run("Bolt", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "kvbackend")
		if err != nil {
			t.Fatal(err)
		}
		defer os.RemoveAll(dir)
		b, err := NewBoltWithFile(filepath.Join(dir, "test.db"))
		if err != nil {
			t.Fatal(err)
		}
		defer b.Close()
		test(t, b)
	})
}

func TestPutGet(t *testing.T) {
	testBackends(t, func(t *testing.T, kv storage.KVBackend) {
		ctx := context.Background()

		if err := kv.Put(ctx, "acme/prod/vpc:main", []byte("vpc-0abc")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		got, err := kv.Get(ctx, "acme/prod/vpc:main")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if string(got) != "vpc-0abc" {
			t.Errorf("Get() = %q, want %q", got, "vpc-0abc")
		}
	})
}

func TestGetNotFound(t *testing.T) {
	testBackends(t, func(t *testing.T, kv storage.KVBackend) {
		_, err := kv.Get(context.Background(), "acme/prod/vpc:nope")
		if err != storage.ErrNotFound {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})
}

func TestDelete(t *testing.T) {
	testBackends(t, func(t *testing.T, kv storage.KVBackend) {
		ctx := context.Background()

		if err := kv.Put(ctx, "acme/prod/vpc:main", []byte("vpc-0abc")); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if err := kv.Delete(ctx, "acme/prod/vpc:main"); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if _, err := kv.Get(ctx, "acme/prod/vpc:main"); err != storage.ErrNotFound {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
		if err := kv.Delete(ctx, "acme/prod/vpc:main"); err != storage.ErrNotFound {
			t.Errorf("Delete() error = %v, want ErrNotFound", err)
		}
	})
}

func TestScan(t *testing.T) {
	testBackends(t, func(t *testing.T, kv storage.KVBackend) {
		ctx := context.Background()

		pairs := map[string]string{
			"acme/prod/vpc:main":      "vpc-0abc",
			"acme/prod/subnet:public": "subnet-0abc",
			"acme/staging/vpc:main":   "vpc-0def",
		}
		for k, v := range pairs {
			if err := kv.Put(ctx, k, []byte(v)); err != nil {
				t.Fatalf("Put(%q) error = %v", k, err)
			}
		}

		got, err := kv.Scan(ctx, "acme/prod")
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		want := map[string][]byte{
			"acme/prod/vpc:main":      []byte("vpc-0abc"),
			"acme/prod/subnet:public": []byte("subnet-0abc"),
		}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("Scan() (-got +want)\n%s", diff)
		}
	})
}

func TestScanEmpty(t *testing.T) {
	testBackends(t, func(t *testing.T, kv storage.KVBackend) {
		got, err := kv.Scan(context.Background(), "acme/prod")
		if err != nil {
			t.Fatalf("Scan() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Scan() = %v, want empty", got)
		}
	})
}

func TestSplitKey(t *testing.T) {
	tests := []struct {
		input   string
		bucket  string
		key     string
		wantErr bool
	}{
		{input: "acme/prod/vpc:main", bucket: "acme/prod", key: "vpc:main"},
		{input: "a/b", bucket: "a", key: "b"},
		{input: "nobucket", wantErr: true},
		{input: "/leading", wantErr: true},
		{input: "trailing/", wantErr: true},
	}
	for _, tt := range tests {
		bucket, key, err := splitKey(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("splitKey(%q) error = nil, want error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("splitKey(%q) error = %v", tt.input, err)
			continue
		}
		if bucket != tt.bucket || key != tt.key {
			t.Errorf("splitKey(%q) = %q, %q; want %q, %q", tt.input, bucket, key, tt.bucket, tt.key)
		}
	}
}
