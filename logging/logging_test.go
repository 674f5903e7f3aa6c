/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recon "github.com/IBM/sss-recon/types"
)

var _ recon.Logger = &Logger{}

func TestLevels(t *testing.T) {
	l, err := New("debug")
	require.NoError(t, err)
	assert.True(t, l.DebugEnabled())

	child := l.With("case", t.Name())
	child.Debugf("visible at %s", "debug")

	l.Mute()
	assert.False(t, l.DebugEnabled())
	assert.False(t, child.DebugEnabled())

	assert.NoError(t, l.SetLevel("info"))
	assert.False(t, l.DebugEnabled())

	assert.Error(t, l.SetLevel("loud"))
}

func TestInvalidLevel(t *testing.T) {
	_, err := New("verbose")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "verbose"`)

	l, err := NewProduction("")
	require.NoError(t, err)
	assert.False(t, l.DebugEnabled())
}
