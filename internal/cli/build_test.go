package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/planvista/topograph/pkg/graph"
	"github.com/planvista/topograph/pkg/inventory"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBuildCommand(t *testing.T) {
	path := writeFile(t, "inv.json", `{
		"clusters": [{"name": "Prod"}],
		"hosts": [{"name": "esxi-01", "cluster": "Prod"}]
	}`)

	cmd := newBuildCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("build error: %v", err)
	}

	g, err := graph.Read(&out)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Errorf("graph = %d nodes, %d edges; want 2 and 1", len(g.Nodes), len(g.Edges))
	}
}

func TestBuildCommandOutputFile(t *testing.T) {
	inv := writeFile(t, "inv.json", `{"servers": [{"assetTag": "HW-1", "status": "available"}]}`)
	out := filepath.Join(t.TempDir(), "graph.json")

	cmd := newBuildCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{inv, "-o", out})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("build error: %v", err)
	}

	g, err := graph.ReadFile(out)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if !g.HasNode("server-hw-1") {
		t.Errorf("output graph = %+v, want the server node", g.Nodes)
	}
}

func TestBuildCommandMissingFile(t *testing.T) {
	cmd := newBuildCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.json")})

	if err := cmd.Execute(); err == nil {
		t.Error("build should fail for a missing inventory file")
	}
}

func TestResolveKind(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		kind    string
		want    inventory.SourceKind
		wantErr bool
	}{
		{"auto detects hardware", `{"servers": []}`, "auto", inventory.SourceHardware, false},
		{"auto detects vsphere", `{"hosts": []}`, "auto", inventory.SourceVSphere, false},
		{"explicit vsphere wins over shape", `{"servers": []}`, "vsphere", inventory.SourceVSphere, false},
		{"explicit hardware", `{}`, "hardware", inventory.SourceHardware, false},
		{"unknown kind", `{}`, "csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveKind([]byte(tt.data), tt.kind)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveKind = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergeCommand(t *testing.T) {
	a := graph.Graph{Nodes: []graph.Node{{ID: "host-a", Kind: graph.KindHost, Data: map[string]any{"label": "a"}}}, Edges: []graph.Edge{}}
	b := graph.Graph{Nodes: []graph.Node{{ID: "host-a", Kind: graph.KindHost, Data: map[string]any{"label": "dup"}}}, Edges: []graph.Edge{}}

	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.json")
	pathB := filepath.Join(dir, "b.json")
	if err := graph.WriteFile(a, pathA); err != nil {
		t.Fatal(err)
	}
	if err := graph.WriteFile(b, pathB); err != nil {
		t.Fatal(err)
	}

	cmd := newMergeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{pathA, pathB})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("merge error: %v", err)
	}

	var merged graph.Graph
	if err := json.Unmarshal(out.Bytes(), &merged); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(merged.Nodes) != 1 {
		t.Fatalf("merged nodes = %d, want 1", len(merged.Nodes))
	}
	if merged.Nodes[0].Data["label"] != "a" {
		t.Errorf("merge kept %v, want the first file's version", merged.Nodes[0].Data["label"])
	}
}

func TestCacheDirOverride(t *testing.T) {
	if dir, err := cacheDir("/tmp/custom"); err != nil || dir != "/tmp/custom" {
		t.Errorf("cacheDir(override) = %q, %v", dir, err)
	}
	dir, err := cacheDir("")
	if err != nil {
		t.Fatalf("cacheDir error: %v", err)
	}
	if filepath.Base(dir) != "topograph" {
		t.Errorf("default cache dir = %q, want a topograph directory", dir)
	}
}
