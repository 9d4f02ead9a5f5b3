package entity

import (
	"errors"
	"fmt"
	"strconv"

	"go.yaml.in/yaml/v3"
)

const (
	limitInfiniteTag = "infinite"
	limitFiniteTag   = "finite"

	defaultDomainCrawlLimit = 100
)

var ErrInvalidLimit = errors.New("invalid crawl limit")

// Limit bounds the number of pages crawled per domain. It is either Infinite
// or Finite(n). The zero value is Finite(0).
type Limit struct {
	infinite bool
	count    uint32
}

// Infinite returns a Limit with no upper bound.
func Infinite() Limit {
	return Limit{infinite: true}
}

// Finite returns a Limit of n pages per domain.
func Finite(n uint32) Limit {
	return Limit{count: n}
}

// DefaultLimit is the crawl limit used when none has been configured.
func DefaultLimit() Limit {
	return Finite(defaultDomainCrawlLimit)
}

func (l Limit) IsInfinite() bool {
	return l.infinite
}

// Count returns the page count and true for a finite limit, or 0 and false
// for an infinite one.
func (l Limit) Count() (uint32, bool) {
	if l.infinite {
		return 0, false
	}
	return l.count, true
}

func (l Limit) String() string {
	if l.infinite {
		return limitInfiniteTag
	}
	return strconv.FormatUint(uint64(l.count), 10)
}

// MarshalYAML writes Infinite as the scalar `infinite` and Finite(n) as the
// single-key mapping `finite: n`.
func (l Limit) MarshalYAML() (interface{}, error) {
	if l.infinite {
		return limitInfiniteTag, nil
	}
	return map[string]uint32{limitFiniteTag: l.count}, nil
}

func (l *Limit) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() != "!!str" || value.Value != limitInfiniteTag {
			return fmt.Errorf("%w: line %d: unexpected value %q", ErrInvalidLimit, value.Line, value.Value)
		}
		*l = Infinite()
		return nil
	case yaml.MappingNode:
		if len(value.Content) != 2 || value.Content[0].Value != limitFiniteTag {
			return fmt.Errorf("%w: line %d: expected a single %q key", ErrInvalidLimit, value.Line, limitFiniteTag)
		}
		count := value.Content[1]
		// Floats such as 1.5 or 1e3 would otherwise be truncated into the count.
		if count.Kind != yaml.ScalarNode || count.ShortTag() != "!!int" {
			return fmt.Errorf("%w: line %d: count %q is not an integer", ErrInvalidLimit, count.Line, count.Value)
		}
		var n uint32
		if err := count.Decode(&n); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidLimit, value.Line, err)
		}
		*l = Finite(n)
		return nil
	default:
		return fmt.Errorf("%w: line %d: expected %q or a %q mapping", ErrInvalidLimit, value.Line, limitInfiniteTag, limitFiniteTag)
	}
}
