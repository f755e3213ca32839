// This file is part of sovereignmap.
//
// sovereignmap is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sovereignmap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sovereignmap. If not, see <http://www.gnu.org/licenses/>.

// Package opscript parses the YAML operation scripts the sovereignctl CLI
// drives through a ProverMap or VerifierMap. It is part of the demonstration
// harness, not the core container (§1 of the spec places "any CLI or I/O
// harness" out of the core's scope).
package opscript

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kind identifies an operation in a script.
type Kind string

const (
	KindInsert Kind = "insert"
	KindGet    Kind = "get"
)

// Op is a single step: an insert carries Key and Value; a get carries only
// Key. The harness fixes K=string, V=int64 — generic enough to express the
// spec's scenarios (§8) without requiring a scripting language rich enough
// to describe arbitrary Go types.
type Op struct {
	Op    Kind   `yaml:"op"`
	Key   string `yaml:"key"`
	Value int64  `yaml:"value,omitempty"`
}

// Script is a named, ordered sequence of operations. The same Script must be
// run against both a ProverMap and a VerifierMap for replay to succeed.
type Script struct {
	Name string `yaml:"name"`
	Ops  []Op   `yaml:"ops"`
}

// Load reads and validates a script from path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opscript: read %s", path)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "opscript: parse %s", path)
	}
	for i, op := range s.Ops {
		switch op.Op {
		case KindInsert, KindGet:
		default:
			return nil, fmt.Errorf("opscript: step %d: unknown op %q", i, op.Op)
		}
	}
	return &s, nil
}
