package catalog

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// document mirrors the YAML layout of a catalog file:
//
//	positions:
//	  - name: Defensa Central
//	    codes: [CB, RCB, LCB]
//	    profiles: [Central Tecnico]
//	profiles:
//	  - name: Central Tecnico
//	    description: ...
//	    metrics:
//	      - {name: "Pases/90", weight: 0.0755}
type document struct {
	Positions []Position `koanf:"positions"`
	Profiles  []Profile  `koanf:"profiles"`
}

// LoadFile reads a YAML catalog, e.g. a league-specific weighting, and validates it.
func LoadFile(_ context.Context, path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	var doc document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if len(doc.Positions) == 0 {
		return nil, fmt.Errorf("%w: %s declares no positions", ErrInvalidCatalog, path)
	}
	return New(doc.Positions, doc.Profiles)
}
