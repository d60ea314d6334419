package cli

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/crypto"
)

const (
	genesis = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	issuer  = "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B"
)

func key(n byte) string {
	return strings.Repeat("00", 31) + fmt.Sprintf("%02X", n)
}

func writeConfig(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`
[directory]
page_capacity = 2

[database]
backend = %q
path = %q

[log]
level = "NOOP"
`, backend, filepath.Join(dir, "db"))

	path := filepath.Join(dir, "xrpldir.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, conf string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--conf", conf}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, conf string, args ...string) string {
	t.Helper()
	out, err := run(t, conf, args...)
	require.NoError(t, err, out)
	return out
}

func TestOwnerDirectoryLifecycle(t *testing.T) {
	for _, backend := range []string{"pebble", "leveldb"} {
		t.Run(backend, func(t *testing.T) {
			conf := writeConfig(t, backend)

			out := mustRun(t, conf, "insert", "--owner", genesis, key(3), key(1), key(2))
			assert.Equal(t, key(3)+" 0\n"+key(1)+" 0\n"+key(2)+" 0\n", out)

			out = mustRun(t, conf, "list", "--owner", genesis)
			assert.Equal(t, key(1)+" 0\n"+key(2)+" 0\n"+key(3)+" 1\n", out)

			out = mustRun(t, conf, "list", "--owner", genesis, "--pages")
			assert.Equal(t, "root last=1 high=1\npage 0 entries=2 prev=0 next=1\npage 1 entries=1 prev=0 next=0\n", out)

			assert.Equal(t, "false\n", mustRun(t, conf, "empty", "--owner", genesis))

			out = mustRun(t, conf, "verify", genesis)
			assert.Contains(t, out, "pages=2 entries=3 tail=1 ok")

			_, err := run(t, conf, "insert", "--owner", genesis, key(2))
			assert.Error(t, err, "duplicate entry")

			mustRun(t, conf, "remove", "--owner", genesis, key(1), key(2), key(3))
			assert.Equal(t, "true\n", mustRun(t, conf, "empty", "--owner", genesis))
			assert.Empty(t, mustRun(t, conf, "list", "--owner", genesis))

			_, err = run(t, conf, "remove", "--owner", genesis, key(1))
			assert.Error(t, err, "entry not found")
		})
	}
}

func TestFailedInsertWritesNothing(t *testing.T) {
	conf := writeConfig(t, "pebble")

	mustRun(t, conf, "insert", "--owner", genesis, key(1))
	_, err := run(t, conf, "insert", "--owner", genesis, key(2), key(1))
	require.Error(t, err)

	out := mustRun(t, conf, "list", "--owner", genesis)
	assert.Equal(t, key(1)+" 0\n", out)
}

func TestBookLevels(t *testing.T) {
	conf := writeConfig(t, "pebble")
	pays := "USD/" + issuer

	mustRun(t, conf, "insert", "--pays", pays, "--gets", "XRP", "--quality", "500", key(1))
	mustRun(t, conf, "insert", "--pays", pays, "--gets", "XRP", "--quality", "300", key(2), key(3))

	out := mustRun(t, conf, "book", "--pays", pays, "--gets", "XRP", "--levels")
	assert.Equal(t, "300 2\n500 1\n", out)

	out = mustRun(t, conf, "book", "--pays", pays, "--gets", "XRP")
	assert.Equal(t, "300 "+key(2)+" 0\n300 "+key(3)+" 0\n500 "+key(1)+" 0\n", out)

	mustRun(t, conf, "remove", "--pays", pays, "--gets", "XRP", "--quality", "300", key(2), key(3))
	out = mustRun(t, conf, "book", "--pays", pays, "--gets", "XRP", "--levels")
	assert.Equal(t, "500 1\n", out)

	out = mustRun(t, conf, "book", "--pays", "XRP", "--gets", pays)
	assert.Empty(t, out)
}

func TestDirectoryFlags(t *testing.T) {
	conf := writeConfig(t, "memory")

	_, err := run(t, conf, "list")
	assert.Error(t, err)

	_, err = run(t, conf, "list", "--owner", genesis, "--root", key(1))
	assert.Error(t, err)

	_, err = run(t, conf, "list", "--pays", "XRP")
	assert.Error(t, err)

	_, err = run(t, conf, "insert", "--owner", genesis, "zz")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	conf := writeConfig(t, "memory")
	out := mustRun(t, conf, "version")
	assert.Contains(t, out, "xrpldir version "+Version)
}

func TestStats(t *testing.T) {
	conf := writeConfig(t, "memory")
	out := mustRun(t, conf, "--stats", "insert", "--owner", genesis, key(1))
	assert.Contains(t, out, "directory_inserts_total")
	assert.Contains(t, out, "directory_pages_created_total")
}

func TestParseAccount(t *testing.T) {
	id, err := parseAccount(genesis)
	require.NoError(t, err)
	assert.Equal(t, "B5F762798A53D543A014CAF8B297CFF8F2F937E8", fmt.Sprintf("%X", id))

	pub := "0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020"
	id, err = parseAccount(pub)
	require.NoError(t, err)
	raw, err := hex.DecodeString(pub)
	require.NoError(t, err)
	assert.Equal(t, crypto.CalcAccountID(raw), id)

	for _, bad := range []string{"rNotAnAddress", "", "0102", "r"} {
		_, err := parseAccount(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseIssue(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		xrp     bool
	}{
		{in: "XRP", xrp: true},
		{in: "xrp", xrp: true},
		{in: "USD/" + issuer},
		{in: "0158415500000000C1F76FF6ECB0BAC600000000/" + issuer},
		{in: "USD", wantErr: true},
		{in: "XRP/" + issuer, wantErr: true},
		{in: "DOLLARS/" + issuer, wantErr: true},
		{in: "USD/nobody", wantErr: true},
		{in: "USD/rrrrrrrrrrrrrrrrrrrrrhoLvTp", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			issue, err := parseIssue(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.xrp, issue == keylet.Issue{})
		})
	}

	usd, err := parseIssue("USD/" + issuer)
	require.NoError(t, err)
	assert.Equal(t, []byte("USD"), usd.Currency[12:15])
}

func TestParseDirectory(t *testing.T) {
	id, err := parseAccount(genesis)
	require.NoError(t, err)

	base, err := parseDirectory(genesis)
	require.NoError(t, err)
	assert.Equal(t, keylet.OwnerDir(id).Key, base)

	raw, err := parseDirectory(key(7))
	require.NoError(t, err)
	assert.Equal(t, byte(7), raw[31])
}
