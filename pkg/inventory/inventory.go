// Package inventory defines the infrastructure inventory records the graph
// builder consumes, and decodes upload payloads into them.
//
// Two source shapes are supported:
//
//   - VSphere: a virtualization export with a four-level hierarchy of
//     datacenters, clusters, hosts, and virtual machines. Parent references
//     are by name and may be absent or dangling.
//   - Hardware pool: a flat catalog of physical servers identified by asset
//     tag, grouped by location.
//
// Records are plain data and are never mutated by the builder.
package inventory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// SourceKind identifies which transformer an upload payload belongs to.
type SourceKind string

const (
	SourceVSphere  SourceKind = "vsphere"
	SourceHardware SourceKind = "hardware"
)

// =============================================================================
// VSphere Export Records
// =============================================================================

// Datacenter is a top-level virtualization container.
type Datacenter struct {
	Name         string `json:"name"`
	ClusterCount int    `json:"clusterCount,omitempty"`
	HostCount    int    `json:"hostCount,omitempty"`
	VMCount      int    `json:"vmCount,omitempty"`
}

// Cluster is a compute cluster, optionally parented to a datacenter by name.
type Cluster struct {
	Name           string `json:"name"`
	DatacenterName string `json:"datacenter,omitempty"`
	HostCount      int    `json:"hostCount,omitempty"`
	VMCount        int    `json:"vmCount,omitempty"`
	DRSEnabled     bool   `json:"drsEnabled,omitempty"`
	HAEnabled      bool   `json:"haEnabled,omitempty"`
}

// Host is a physical hypervisor host, optionally parented to a cluster.
type Host struct {
	Name        string `json:"name"`
	ClusterName string `json:"cluster,omitempty"`
	CPUModel    string `json:"cpuModel,omitempty"`
	CPUCores    int    `json:"cpuCores,omitempty"`
	CPUThreads  int    `json:"cpuThreads,omitempty"`
	MemoryMB    int64  `json:"memoryMB,omitempty"`
	Vendor      string `json:"vendor,omitempty"`
	Model       string `json:"model,omitempty"`
}

// VirtualMachine is a guest parented to a host by name.
type VirtualMachine struct {
	Name          string  `json:"name"`
	HostName      string  `json:"host,omitempty"`
	PowerState    string  `json:"powerState,omitempty"`
	VCPUs         int     `json:"vcpus,omitempty"`
	MemoryMB      int64   `json:"memoryMB,omitempty"`
	ProvisionedGB float64 `json:"provisionedGB,omitempty"`
	UsedGB        float64 `json:"usedGB,omitempty"`
	GuestOS       string  `json:"guestOS,omitempty"`
	IPAddress     string  `json:"ipAddress,omitempty"`
}

// VSphere is one virtualization export dataset. Any or all lists may be
// empty; an empty dataset transforms to an empty graph.
type VSphere struct {
	Datacenters     []Datacenter     `json:"datacenters"`
	Clusters        []Cluster        `json:"clusters"`
	Hosts           []Host           `json:"hosts"`
	VirtualMachines []VirtualMachine `json:"virtualMachines"`
}

// =============================================================================
// Hardware-Pool Records
// =============================================================================

// Server is one physical asset from a hardware-pool catalog.
type Server struct {
	AssetTag     string `json:"assetTag"`
	Vendor       string `json:"vendor,omitempty"`
	Model        string `json:"model,omitempty"`
	Location     string `json:"location,omitempty"`
	Status       string `json:"status,omitempty"`
	CPUCores     int    `json:"cpuCores,omitempty"`
	MemoryGB     int64  `json:"memoryGB,omitempty"`
	RackPosition string `json:"rackPosition,omitempty"`
}

// HardwarePool is one hardware catalog upload.
type HardwarePool struct {
	Servers []Server `json:"servers"`
}

// =============================================================================
// Payload Decoding
// =============================================================================

// DecodeVSphere decodes a vSphere export payload. A payload of `{}` or one
// with absent lists is valid and yields an empty dataset.
func DecodeVSphere(r io.Reader) (*VSphere, error) {
	var inv VSphere
	if err := json.NewDecoder(r).Decode(&inv); err != nil {
		return nil, fmt.Errorf("decode vsphere inventory: %w", err)
	}
	return &inv, nil
}

// DecodeHardware decodes a hardware-pool payload.
func DecodeHardware(r io.Reader) (*HardwarePool, error) {
	var pool HardwarePool
	if err := json.NewDecoder(r).Decode(&pool); err != nil {
		return nil, fmt.Errorf("decode hardware inventory: %w", err)
	}
	return &pool, nil
}

// DetectSource guesses the source kind of a raw payload by its top-level
// keys: a "servers" list marks a hardware-pool catalog, anything else is
// treated as a vSphere export.
func DetectSource(data []byte) SourceKind {
	var probe struct {
		Servers json.RawMessage `json:"servers"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(data), &probe); err == nil && probe.Servers != nil {
		return SourceHardware
	}
	return SourceVSphere
}
