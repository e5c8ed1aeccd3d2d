package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addrforge/addrforge/pkg/addressgen"
)

func TestGenerateBatch(t *testing.T) {
	gen := addressgen.New(addressgen.WithSeed(1))

	addrs := generateBatch(gen, 5, true, false)
	require.Len(t, addrs, 5)
	for _, a := range addrs {
		assert.Regexp(t, `^\d{5}-\d{4}$`, a.Zip)
	}

	// Count below one still yields a single record.
	assert.Len(t, generateBatch(gen, 0, false, false), 1)
}

func TestWriteAddressesJSON(t *testing.T) {
	gen := addressgen.New(addressgen.WithSeed(2))
	addrs := generateBatch(gen, 3, false, false)

	var buf bytes.Buffer
	require.NoError(t, writeAddresses(&buf, addrs, "json"))

	var decoded []addressgen.Address
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, addrs, decoded)
}

func TestWriteAddressesCSV(t *testing.T) {
	gen := addressgen.New(addressgen.WithSeed(3))
	addrs := generateBatch(gen, 2, false, false)

	var buf bytes.Buffer
	require.NoError(t, writeAddresses(&buf, addrs, "csv"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "header plus one line per address")
	assert.Equal(t, "street1,street2,city,county,state,zip,country", lines[0])
}

func TestWriteAddressesText(t *testing.T) {
	gen := addressgen.New(addressgen.WithSeed(4))
	addrs := generateBatch(gen, 1, false, false)

	var buf bytes.Buffer
	require.NoError(t, writeAddresses(&buf, addrs, "text"))
	assert.Contains(t, buf.String(), addrs[0].City)
}

func TestWriteAddressesUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeAddresses(&buf, nil, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestBuildGeneratorMissingDataset(t *testing.T) {
	_, err := buildGenerator("/does/not/exist.yaml", 0, false)
	require.Error(t, err)
}

func TestBuildGeneratorSeeded(t *testing.T) {
	a, err := buildGenerator("", 42, true)
	require.NoError(t, err)
	b, err := buildGenerator("", 42, true)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Address(), b.Address())
	}
}
