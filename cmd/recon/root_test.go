/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRecon(t *testing.T) {
	out, err := execute(t, "--dir", "../../loader/testdata", "--log-level", "warn", "testcase1.json", "annotated.json")
	require.NoError(t, err)

	assert.Contains(t, out, "Processing testcase1.json:")
	assert.Contains(t, out, "Secret 3 appears 4/4 times (100.0%)")
	assert.Contains(t, out, "Secret 7 appears 3/3 times (100.0%)")
	assert.Contains(t, out, "testcase1.json Secret: 3\nannotated.json Secret: 7\n")
}

func TestReconFailure(t *testing.T) {
	out, err := execute(t, "--dir", "../../loader/testdata", "--log-level", "error", "testcase1.json", "nonexistent.json")
	assert.EqualError(t, err, "1 of 2 test cases could not be reconstructed")
	assert.Contains(t, out, "testcase1.json Secret: 3\nnonexistent.json: failed\n")
}

func TestReconLimit(t *testing.T) {
	_, err := execute(t, "--dir", "../../loader/testdata", "--log-level", "error", "--max-combinations", "2", "testcase1.json")
	assert.Error(t, err)
}

func TestReconBadFlags(t *testing.T) {
	_, err := execute(t, "--workers", "0", "testcase1.json")
	assert.EqualError(t, err, "workers must be positive, got 0")

	_, err = execute(t, "--config", "nonexistent.yml")
	assert.Error(t, err)
}
