package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/etnz/pricetracker"
	"github.com/etnz/pricetracker/config"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prices = `commodity,unit,date,price
Wheat,Kg,2023-06-10,20
Wheat,Kg,2024-06-10,25
Rice,Kg,2023-06-10,40
Rice,Kg,2024-06-10,60
`

// withDataFile points the global data file to a temporary file containing content.
func withDataFile(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	old := *dataFile
	*dataFile = filename
	t.Cleanup(func() { *dataFile = old })
	return filename
}

func TestWriteJSON(t *testing.T) {
	v := map[string]any{
		"records": []map[string]any{
			{"commodity": "Wheat", "rate": 25},
			{"commodity": "Rice", "rate": -3},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, v, "$.records[*].commodity"))
	assert.JSONEq(t, `["Wheat","Rice"]`, buf.String())

	buf.Reset()
	require.NoError(t, writeJSON(&buf, v, "$.records[?(@.rate > 0)].commodity"))
	assert.JSONEq(t, `["Wheat"]`, buf.String())

	buf.Reset()
	require.NoError(t, writeJSON(&buf, v, ""))
	assert.JSONEq(t, `{"records":[{"commodity":"Wheat","rate":25},{"commodity":"Rice","rate":-3}]}`, buf.String())

	assert.Error(t, writeJSON(&buf, v, "$.records[")) // invalid expression
}

func TestConfigure(t *testing.T) {
	oldData, oldCurrency, oldVerbose := *dataFile, *currency, *Verbose
	defer func() { *dataFile, *currency, *Verbose = oldData, oldCurrency, oldVerbose }()

	cfg := config.Default()
	cfg.DataFile = "prices.csv"
	cfg.Currency = "NPR"
	cfg.Addr = ":9000"
	Configure(&cfg)

	assert.Equal(t, "prices.csv", *dataFile)
	assert.Equal(t, "NPR", *currency)
	assert.Equal(t, ":9000", listenAddr)
}

func TestLoadTable(t *testing.T) {
	withDataFile(t, prices)
	tbl, err := LoadTable()
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Len())

	*dataFile = filepath.Join(t.TempDir(), "missing.csv")
	_, err = LoadTable()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return c.Execute(context.Background(), fs)
}

func TestViewCmd(t *testing.T) {
	old := *rawMD
	*rawMD = true
	defer func() { *rawMD = old }()

	withDataFile(t, prices)
	for _, v := range pricetracker.Views {
		c := &viewCmd{view: v}
		assert.Equal(t, v.String(), c.Name())
		// the monthly view has no history, which is not a failure.
		assert.Equal(t, subcommands.ExitSuccess, execute(t, c, "-json"), v.String())
	}
	assert.Equal(t, subcommands.ExitUsageError, execute(t, &viewCmd{view: pricetracker.VolatilityView}, "-top", "0"))

	withDataFile(t, "name,price\n")
	assert.Equal(t, subcommands.ExitFailure, execute(t, &viewCmd{view: pricetracker.YearlyView}))
}

func TestDashboardCmd(t *testing.T) {
	withDataFile(t, prices)
	assert.Equal(t, subcommands.ExitSuccess, execute(t, &dashboardCmd{}, "-select", "$.anchor"))

	withDataFile(t, "commodity,unit,date,price\n")
	assert.Equal(t, subcommands.ExitFailure, execute(t, &dashboardCmd{}, "-json"))
}

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("cpt", flag.ContinueOnError), "cpt")
	Register(commander)

	root := Completion(commander)
	for _, name := range []string{"yearly", "monthly", "volatility", "dashboard", "clean", "serve", "topic"} {
		assert.Contains(t, root.Sub, name)
	}
	assert.Contains(t, root.Sub["volatility"].Flags, "top")
	assert.Contains(t, root.Sub["clean"].Flags, "i")
	assert.NotNil(t, root.Sub["topic"].Args)
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "env.txt")
	script := "#!/bin/sh\nenv > " + out + "\nexit 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cpt-hello"), []byte(script), 0755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	withDataFile(t, prices)
	oldCurrency := *currency
	*currency = "XYZ"
	defer func() { *currency = oldCurrency }()

	found, code := RunExtension("hello", nil)
	assert.True(t, found)
	assert.Equal(t, 3, code)

	env, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(env), EnvDataFile+"="+*dataFile)
	assert.Contains(t, string(env), EnvCurrency+"=XYZ")
	assert.True(t, strings.Contains(string(env), EnvVerbose+"="))

	found, _ = RunExtension("does-not-exist", nil)
	assert.False(t, found)
}
