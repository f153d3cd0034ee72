// Copyright (C) 2020-2026, Confidis Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package params

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FromYAML decodes a seed Params document, filling any field the document
// omits from Default, then validates the result. It is the CLI's
// --config loader: a host that wants different starting tunables than
// the spec defaults supplies them here rather than through a sequence of
// CONFIGURE commands.
func FromYAML(r io.Reader) (Params, error) {
	p := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return Params{}, fmt.Errorf("decode params yaml: %w", err)
	}
	if err := p.Valid(); err != nil {
		return Params{}, fmt.Errorf("invalid params: %w", err)
	}
	return p, nil
}
