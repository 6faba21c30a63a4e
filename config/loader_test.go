package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/weft/weft/entity"
)

func TestLoadFile(t *testing.T) {
	l := &Loader{}
	doc, err := l.Load("testdata/project.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc.Project != "acme" {
		t.Errorf("Project = %q, want %q", doc.Project, "acme")
	}
	if diff := cmp.Diff(doc.EnvironmentNames(), []string{"prod", "staging"}); diff != "" {
		t.Errorf("EnvironmentNames() (-got +want)\n%s", diff)
	}

	prod := doc.Environment("prod")
	wantVPCs := []entity.VPC{
		{Name: "main", CIDRBlock: "10.0.0.0/16", Region: "us-east-1"},
	}
	if diff := cmp.Diff(prod.VPCs, wantVPCs); diff != "" {
		t.Errorf("prod VPCs (-got +want)\n%s", diff)
	}
	wantSubnets := []entity.Subnet{
		{Name: "public", VPC: "main", CIDRBlock: "10.0.0.0/24", AZIndex: 0, Public: true},
	}
	if diff := cmp.Diff(prod.Subnets, wantSubnets); diff != "" {
		t.Errorf("prod Subnets (-got +want)\n%s", diff)
	}
}

func TestLoadDir(t *testing.T) {
	l := &Loader{}
	doc, err := l.Load("testdata/split")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if doc.Project != "acme" {
		t.Errorf("Project = %q, want %q", doc.Project, "acme")
	}
	if diff := cmp.Diff(doc.EnvironmentNames(), []string{"dev", "prod"}); diff != "" {
		t.Errorf("EnvironmentNames() (-got +want)\n%s", diff)
	}

	// prod is declared in both files; the declarations merge.
	prod := doc.Environment("prod")
	if len(prod.VPCs) != 1 || len(prod.Clusters) != 1 {
		t.Errorf("prod = %d vpcs, %d clusters; want 1 of each", len(prod.VPCs), len(prod.Clusters))
	}
}

func TestLoadEmptyFile(t *testing.T) {
	l := &Loader{}
	doc, err := l.Load("testdata/empty.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.EnvironmentNames()) != 0 {
		t.Errorf("EnvironmentNames() = %v, want none", doc.EnvironmentNames())
	}
}

func TestLoadUnknownField(t *testing.T) {
	l := &Loader{}
	_, err := l.Load("testdata/typo.yaml")
	if err == nil {
		t.Fatal("Load() error = nil, want unknown field error")
	}
}

func TestLoadMissingPath(t *testing.T) {
	l := &Loader{}
	if _, err := l.Load("testdata/nope.yaml"); err == nil {
		t.Fatal("Load() error = nil, want stat error")
	}
}

func TestEnvironmentMissing(t *testing.T) {
	doc := &Document{}
	decls := doc.Environment("nope")
	if decls == nil {
		t.Fatal("Environment() = nil, want empty declarations")
	}
	if diff := cmp.Diff(decls, &entity.Declarations{}); diff != "" {
		t.Errorf("Environment() (-got +want)\n%s", diff)
	}
}
