// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Skills, 10)
	assert.Len(t, c.Committees, 5)
	assert.True(t, c.IsSkill("Machine Learning"))
	assert.False(t, c.IsSkill("machine learning"), "lookups are case-sensitive")
	assert.True(t, c.IsCommittee("External Affairs"))
	assert.True(t, c.IsProvince("Cebu"))
	assert.True(t, c.IsProvince("Rizal"))
	assert.False(t, c.IsProvince("Atlantis"))
	assert.Same(t, c, Default())
}

func TestParse_Errors(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		_, err := Parse([]byte("skills: [a]\ncommittees: []\nprovinces: [x]\n"))
		require.ErrorIs(t, err, ErrEmptyList)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := Parse([]byte("skills: [a, a]\ncommittees: [b]\nprovinces: [x]\n"))
		require.ErrorIs(t, err, ErrDuplicateItem)
	})

	t.Run("too few committees", func(t *testing.T) {
		_, err := Parse([]byte("skills: [a]\ncommittees: [b, c]\nprovinces: [x]\n"))
		require.ErrorIs(t, err, ErrTooFewRankable)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Parse([]byte("skills: [a"))
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skills: [Go]\ncommittees: [Ops, Events, Outreach]\nprovinces: [Bohol]\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.IsSkill("Go"))
	assert.True(t, c.IsCommittee("Ops"))
	assert.True(t, c.IsProvince("Bohol"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
