// Package seed parses desired-state seed files. A seed file is the YAML
// form of the reconcile dataset: asset, client, and allocation entries
// keyed by natural key, applied through the reconciler.
package seed

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/walletworks/portfolio/internal/portfolio/service"
)

// File is the top-level structure of a seed file.
type File struct {
	Assets      []Asset      `yaml:"assets"`
	Clients     []Client     `yaml:"clients"`
	Allocations []Allocation `yaml:"allocations"`
}

type Asset struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type Client struct {
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Status *bool  `yaml:"status"`
}

type Allocation struct {
	ClientEmail string `yaml:"clientEmail"`
	AssetName   string `yaml:"assetName"`
	Quantity    int64  `yaml:"quantity"`
}

// Load reads and parses a seed file from disk.
func Load(path string) (service.DesiredState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return service.DesiredState{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse converts raw YAML into a desired-state dataset. Asset values must
// parse as decimals; everything else is validated during reconciliation.
func Parse(raw []byte) (service.DesiredState, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return service.DesiredState{}, fmt.Errorf("failed to parse seed file: %w", err)
	}

	desired := service.DesiredState{
		Assets:      make([]service.DesiredAsset, len(f.Assets)),
		Clients:     make([]service.DesiredClient, len(f.Clients)),
		Allocations: make([]service.DesiredAllocation, len(f.Allocations)),
	}

	for i, a := range f.Assets {
		value, err := decimal.NewFromString(a.Value)
		if err != nil {
			return service.DesiredState{}, fmt.Errorf("asset %q: invalid value %q", a.Name, a.Value)
		}
		desired.Assets[i] = service.DesiredAsset{Name: a.Name, Value: value}
	}

	for i, c := range f.Clients {
		desired.Clients[i] = service.DesiredClient{
			Name:   c.Name,
			Email:  c.Email,
			Status: c.Status,
		}
	}

	for i, al := range f.Allocations {
		desired.Allocations[i] = service.DesiredAllocation{
			ClientEmail: al.ClientEmail,
			AssetName:   al.AssetName,
			Quantity:    al.Quantity,
		}
	}

	return desired, nil
}
