package yamlfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/user/carto/internal/entity"
)

const indent = 2

// settingsDocument is the on-disk shape of UserSettings. Pointers let the
// decoder tell a missing key from a zero value.
type settingsDocument struct {
	DomainCrawlLimit *entity.Limit `yaml:"domain_crawl_limit"`
	RunWizard        *bool         `yaml:"run_wizard"`
	AllowList        *[]string     `yaml:"allow_list"`
	BlockList        *[]string     `yaml:"block_list"`
}

// MarshalSettings encodes settings in the human-readable form used for the
// preferences file. Callers that update preferences must write through this
// to keep the file readable by UnmarshalSettings.
func MarshalSettings(settings entity.UserSettings) ([]byte, error) {
	// Lists are always written, even when nil.
	if settings.AllowList == nil {
		settings.AllowList = []string{}
	}
	if settings.BlockList == nil {
		settings.BlockList = []string{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(settings); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalSettings strictly decodes a preferences document: unknown keys,
// missing keys, malformed values and trailing documents are all errors.
// Boolean fields also accept the YAML 1.1 spellings yes/no and on/off.
func UnmarshalSettings(data []byte) (entity.UserSettings, error) {
	var doc settingsDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return entity.UserSettings{}, errors.New("document is empty")
		}
		return entity.UserSettings{}, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return entity.UserSettings{}, errors.New("unexpected trailing document")
	}

	var missing []string
	if doc.DomainCrawlLimit == nil {
		missing = append(missing, "domain_crawl_limit")
	}
	if doc.RunWizard == nil {
		missing = append(missing, "run_wizard")
	}
	if doc.AllowList == nil {
		missing = append(missing, "allow_list")
	}
	if doc.BlockList == nil {
		missing = append(missing, "block_list")
	}
	if len(missing) > 0 {
		return entity.UserSettings{}, fmt.Errorf("missing or null fields %v", missing)
	}

	return entity.UserSettings{
		DomainCrawlLimit: *doc.DomainCrawlLimit,
		RunWizard:        *doc.RunWizard,
		AllowList:        *doc.AllowList,
		BlockList:        *doc.BlockList,
	}, nil
}
