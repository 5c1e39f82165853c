package configs

// Ledger configures the custody ledger.
type Ledger struct {
	// Store selects the ledger backend: "postgres" or "memory". The memory
	// store loses everything on restart.
	Store string `env:"STORE" envDefault:"postgres"`
	// CampaignReserve is charged to the creator and held in a new
	// campaign's custody account.
	CampaignReserve uint64 `env:"CAMPAIGN_RESERVE" envDefault:"0"`
	// Seed credits SeedIdentities with SeedBalance on startup.
	Seed           bool     `env:"SEED" envDefault:"false"`
	SeedIdentities []string `env:"SEED_IDENTITIES" envDefault:"alice,bob,carol" envSeparator:","`
	SeedBalance    uint64   `env:"SEED_BALANCE" envDefault:"1000000000"`
}

// UsesMemory reports whether the in-process store is selected.
func (c Ledger) UsesMemory() bool {
	return c.Store == "memory"
}
