package entity

import "slices"

// UserSettings mirrors the preferences file.
type UserSettings struct {
	// Pages allowed per domain. Subdomains count as separate domains.
	DomainCrawlLimit Limit `yaml:"domain_crawl_limit"`
	// Whether the setup wizard should run on next start.
	RunWizard bool `yaml:"run_wizard"`
	// Domains always allowed, regardless of BlockList.
	AllowList []string `yaml:"allow_list"`
	// Domains never crawled.
	BlockList []string `yaml:"block_list"`
}

// DefaultUserSettings returns the settings written on first start.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		DomainCrawlLimit: DefaultLimit(),
		RunWizard:        false,
		AllowList:        []string{},
		BlockList:        []string{},
	}
}

// Equal reports whether s and other hold the same values. A nil list equals
// an empty one.
func (s UserSettings) Equal(other UserSettings) bool {
	return s.DomainCrawlLimit == other.DomainCrawlLimit &&
		s.RunWizard == other.RunWizard &&
		slices.Equal(s.AllowList, other.AllowList) &&
		slices.Equal(s.BlockList, other.BlockList)
}
