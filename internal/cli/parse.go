package cli

import (
	"encoding/hex"
	"strings"

	addresscodec "github.com/Peersyst/xrpl-go/address-codec"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/LeJamon/xrpldir/internal/core/ledger/directory"
	"github.com/LeJamon/xrpldir/internal/core/ledger/keylet"
	"github.com/LeJamon/xrpldir/internal/crypto"
)

// parseAccount accepts a classic address or a hex encoded public key.
func parseAccount(s string) ([20]byte, error) {
	var id [20]byte
	if strings.HasPrefix(s, "r") {
		_, raw, err := addresscodec.DecodeClassicAddressToAccountID(s)
		if err != nil {
			return id, errors.Wrapf(err, "invalid account %q", s)
		}
		if id, err = crypto.AccountIDFromBytes(raw); err != nil {
			return id, errors.Wrapf(err, "invalid account %q", s)
		}
		return id, nil
	}

	pub, err := hex.DecodeString(s)
	if err != nil || len(pub) != 33 {
		return id, errors.Newf("invalid account %q: want a classic address or a 33 byte public key", s)
	}
	return crypto.CalcAccountID(pub), nil
}

func parseHash(s string) ([32]byte, error) {
	var h [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return h, errors.Wrapf(err, "invalid key %q", s)
	}
	if len(raw) != len(h) {
		return h, errors.Newf("invalid key %q: want 32 bytes, got %d", s, len(raw))
	}
	copy(h[:], raw)
	return h, nil
}

// parseCurrency accepts XRP, a three letter code or a 40 character hex code.
func parseCurrency(s string) ([20]byte, error) {
	var c [20]byte
	switch {
	case strings.EqualFold(s, "XRP"):
		return c, nil
	case len(s) == 3:
		copy(c[12:], s)
		return c, nil
	case len(s) == 40:
		raw, err := hex.DecodeString(s)
		if err != nil {
			return c, errors.Wrapf(err, "invalid currency %q", s)
		}
		copy(c[:], raw)
		return c, nil
	}
	return c, errors.Newf("invalid currency %q", s)
}

// parseIssue accepts XRP or CUR/issuer.
func parseIssue(s string) (keylet.Issue, error) {
	var issue keylet.Issue
	cur, issuer, found := strings.Cut(s, "/")

	c, err := parseCurrency(cur)
	if err != nil {
		return issue, err
	}
	issue.Currency = c

	if c == ([20]byte{}) {
		if found {
			return issue, errors.Newf("invalid issue %q: XRP has no issuer", s)
		}
		return issue, nil
	}
	if !found {
		return issue, errors.Newf("invalid issue %q: want CUR/issuer", s)
	}
	if issue.Issuer, err = parseAccount(issuer); err != nil {
		return issue, err
	}
	if crypto.IsZeroAccountID(issue.Issuer) {
		return issue, errors.Newf("invalid issue %q: %s is not an issuer", s, issuer)
	}
	return issue, nil
}

func parseBook(pays, gets string) (keylet.Book, error) {
	var book keylet.Book
	var err error
	if book.In, err = parseIssue(pays); err != nil {
		return book, errors.Wrap(err, "--pays")
	}
	if book.Out, err = parseIssue(gets); err != nil {
		return book, errors.Wrap(err, "--gets")
	}
	if book.In == book.Out {
		return book, errors.New("--pays and --gets name the same issue")
	}
	return book, nil
}

// parseDirectory accepts an owner account or a 64 character root key.
func parseDirectory(s string) ([32]byte, error) {
	if len(s) == 64 {
		return parseHash(s)
	}
	owner, err := parseAccount(s)
	if err != nil {
		return [32]byte{}, err
	}
	return keylet.OwnerDir(owner).Key, nil
}

// dirFlags selects one directory: an owner directory, one price level of a
// book or a raw root key.
type dirFlags struct {
	owner   string
	pays    string
	gets    string
	quality uint64
	root    string
}

func (f *dirFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.owner, "owner", "", "owner account (classic address or public key)")
	cmd.Flags().StringVar(&f.pays, "pays", "", "book taker pays issue (XRP or CUR/issuer)")
	cmd.Flags().StringVar(&f.gets, "gets", "", "book taker gets issue (XRP or CUR/issuer)")
	cmd.Flags().Uint64Var(&f.quality, "quality", 0, "book price level")
	cmd.Flags().StringVar(&f.root, "root", "", "directory root key (hex)")
	cmd.MarkFlagsMutuallyExclusive("owner", "pays", "root")
	cmd.MarkFlagsMutuallyExclusive("owner", "gets", "root")
	cmd.MarkFlagsRequiredTogether("pays", "gets")
}

// dirTarget is a resolved directory.
type dirTarget struct {
	base     [32]byte
	describe func(*directory.Page)
}

func (f *dirFlags) resolve() (dirTarget, error) {
	switch {
	case f.owner != "":
		owner, err := parseAccount(f.owner)
		if err != nil {
			return dirTarget{}, err
		}
		return dirTarget{
			base:     keylet.OwnerDir(owner).Key,
			describe: directory.DescribeOwner(owner),
		}, nil

	case f.pays != "":
		book, err := parseBook(f.pays, f.gets)
		if err != nil {
			return dirTarget{}, err
		}
		return dirTarget{
			base:     keylet.Quality(keylet.BookDir(book).Key, f.quality).Key,
			describe: directory.DescribeBook(book, f.quality),
		}, nil

	case f.root != "":
		root, err := parseHash(f.root)
		if err != nil {
			return dirTarget{}, err
		}
		return dirTarget{base: root}, nil
	}
	return dirTarget{}, errors.New("one of --owner, --pays/--gets or --root is required")
}
