/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package loader

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"

	. "github.com/IBM/sss-recon/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const keysField = "keys"

type keys struct {
	N *int `json:"n"`
	K *int `json:"k"`
}

type rawShare struct {
	Base  flexInt `json:"base"`
	Value string  `json:"value"`
}

// flexInt accepts both a JSON number and a string holding a decimal number.
type flexInt int

func (fi *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}

	n, err := strconv.Atoi(string(bytes.TrimSpace(b)))
	if err != nil {
		return errors.Errorf("%s is not an integer", string(b))
	}
	*fi = flexInt(n)
	return nil
}

// File loads test cases from JSON files.
// Names are resolved relative to Dir unless they are absolute.
type File struct {
	Dir string
}

// Load reads and parses the named test case file.
func (f *File) Load(ctx context.Context, name string) (*RawCase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := name
	if f.Dir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(f.Dir, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading %s", path)
	}

	rc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed parsing %s", path)
	}
	return rc, nil
}

// Decode reads a whole test case from r.
func Decode(r io.Reader) (*RawCase, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading test case")
	}
	return Parse(data)
}

// Parse parses a test case of the form
//
//	{"keys": {"n": 4, "k": 3}, "1": {"base": "10", "value": "4"}, ...}
//
// Comments and trailing commas are tolerated.
func Parse(data []byte) (*RawCase, error) {
	data, err := standardizeJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "standardize json")
	}

	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.Wrap(err, "test case is not a JSON object")
	}

	rawKeys, exists := fields[keysField]
	if !exists {
		return nil, NewConfigError("missing %q object", keysField)
	}

	var k keys
	if err := json.Unmarshal(rawKeys, &k); err != nil {
		return nil, errors.Wrapf(err, "malformed %q object", keysField)
	}

	if k.N == nil || k.K == nil {
		return nil, NewConfigError("%q must define both n and k", keysField)
	}

	rc := &RawCase{
		N:      *k.N,
		K:      *k.K,
		Shares: make(map[string]RawShare, len(fields)-1),
	}

	for key, raw := range fields {
		if key == keysField {
			continue
		}

		var rs rawShare
		if err := json.Unmarshal(raw, &rs); err != nil {
			return nil, errors.Wrapf(err, "malformed share %s", key)
		}

		rc.Shares[key] = RawShare{
			Base:  int(rs.Base),
			Value: rs.Value,
		}
	}

	return rc, nil
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
