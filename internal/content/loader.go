package content

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a portfolio dataset from a YAML file.
func LoadFile(path string) (p Portfolio, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return p, err
	}

	err = yaml.Unmarshal(data, &p)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse content file: %s", path)
		return p, err
	}

	if p.Personal.FirstName == "" {
		if fields := strings.Fields(p.Personal.Name); len(fields) > 0 {
			p.Personal.FirstName = fields[0]
		}
	}

	err = p.Validate()
	if err != nil {
		err = errors.Wrap(err, "content validation failed")
		return p, err
	}

	return p, err
}

// Load returns the dataset at path, or the built-in dataset when path is empty.
func Load(path string) (p Portfolio, err error) {
	if path == "" {
		p = Default()
		return p, err
	}
	p, err = LoadFile(path)
	return p, err
}

// Validate checks the invariants the query functions rely on.
func (p *Portfolio) Validate() (err error) {
	if p.Personal.Name == "" {
		err = errors.New("personal.name is required")
		return err
	}

	for _, cat := range p.Skills.Technical {
		for _, s := range cat.Items {
			if s.Level < 0 || s.Level > 100 {
				err = errors.Errorf("skill %q level %d out of range 0-100", s.Name, s.Level)
				return err
			}
		}
	}

	ids := make(map[string]bool, len(p.Projects))
	for i, proj := range p.Projects {
		if proj.ID == "" {
			err = errors.Errorf("project at index %d missing id", i)
			return err
		}
		if ids[proj.ID] {
			err = errors.Errorf("duplicate project id %s", proj.ID)
			return err
		}
		ids[proj.ID] = true
		if proj.Title == "" {
			err = errors.Errorf("project %s missing title", proj.ID)
			return err
		}
	}

	return err
}
