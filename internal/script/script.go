// Package script reads YAML files describing a sequence of set operations:
//
//	steps:
//	  - insert: [20, 10, 30]
//	  - erase: [10]
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/ddirect/orderedset/set"
	"gopkg.in/yaml.v3"
)

type Step struct {
	Insert []int `yaml:"insert,omitempty"`
	Erase  []int `yaml:"erase,omitempty"`
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

var ErrInvalidStep = errors.New("step must hold exactly one of insert or erase")

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	s := new(Script)
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, st := range s.Steps {
		if (st.Insert == nil) == (st.Erase == nil) {
			return nil, fmt.Errorf("step %d: %w", i+1, ErrInvalidStep)
		}
	}
	return s, nil
}

// Apply runs the steps against s; after every step the tree invariants
// are verified.
func (sc *Script) Apply(s *set.Set[int]) error {
	for i, st := range sc.Steps {
		for _, k := range st.Insert {
			s.Insert(k)
		}
		for _, k := range st.Erase {
			s.Delete(k)
		}
		if err := s.Check(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}
