package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Identity names a principal (creator, donor or authority). Signature
// verification happens in front of the service; the core only compares
// identities for equality.
type Identity string

// MaxIdentityLength bounds the byte length of an Identity.
const MaxIdentityLength = 64

// Valid reports whether the identity is non-empty, bounded, valid UTF-8
// without NUL, and free of the ':' separator reserved for custody accounts
// owned by the ledger itself. Identities are stored as text keys.
func (i Identity) Valid() bool {
	s := string(i)
	return s != "" && len(s) <= MaxIdentityLength && utf8.ValidString(s) &&
		!strings.ContainsAny(s, ":\x00")
}

// Account returns the custody account owned by the identity.
func (i Identity) Account() Account {
	return Account(i)
}

// Account is the key of a custody record in the host ledger.
type Account string

// AdminAccount collects donation fees.
const AdminAccount Account = "registry:" + RegistryKey

// CampaignAccount returns the custody account holding a campaign's funds.
func CampaignAccount(id uuid.UUID) Account {
	return Account("campaign:" + id.String())
}
