// Package parser converts a transcribed voice utterance into a structured
// financial transaction. The pipeline is rule-based and pure: ordered
// currency patterns for the amount, keyword-count scoring for direction,
// two-tier category resolution (caller categories first, built-in taxonomy
// second), textual cleanup for the description, and closed keyword sets for
// date and account.
package parser

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ErrNoAmount reports that no strictly positive amount could be extracted,
// which aborts the whole parse. Internal failures are wrapped around it so
// callers can treat any parse error as "could not understand".
var ErrNoAmount = errors.New("no amount found in utterance")

// Parser parses utterances against an optional caller-category set. The set
// is guarded for callers that configure it once and parse from a UI loop;
// ParseWithCategories is the stateless alternative.
type Parser struct {
	mu         sync.RWMutex
	categories []Category

	now func() time.Time // test hook
}

func New() *Parser {
	return &Parser{now: time.Now}
}

// SetAvailableCategories replaces the category set consulted by Tier-1
// matching. Call it whenever the user's categories change, before the next
// Parse.
func (p *Parser) SetAvailableCategories(categories []Category) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.categories = append([]Category(nil), categories...)
}

// Parse parses one utterance using the configured category set.
func (p *Parser) Parse(utterance string) (*ParsedTransaction, error) {
	p.mu.RLock()
	categories := p.categories
	p.mu.RUnlock()
	return parse(utterance, categories, p.now())
}

// ParseWithCategories parses one utterance with an explicit category set,
// threading the caller's categories through instead of the configured state.
func (p *Parser) ParseWithCategories(utterance string, categories []Category) (*ParsedTransaction, error) {
	return parse(utterance, categories, p.now())
}

// parse runs the extraction sequence. On any failure it returns a nil
// transaction; a partially filled record is never returned.
func parse(utterance string, categories []Category, now time.Time) (tx *ParsedTransaction, err error) {
	// The keyword tables and patterns evolve independently of this function;
	// a panic in any extractor must not escape the parse boundary.
	defer func() {
		if r := recover(); r != nil {
			tx = nil
			err = fmt.Errorf("parser: recovered from %v: %w", r, ErrNoAmount)
		}
	}()

	// 1. Normalize the utterance.
	text := strings.ToLower(strings.TrimSpace(utterance))
	words := strings.Fields(text)

	// 2. Extract the amount; without one there is no transaction.
	amount, ok := extractAmount(text, words)
	if !ok {
		return nil, ErrNoAmount
	}

	// 3. Classify the direction.
	direction := classifyDirection(text, words)

	// 4. Resolve the category for that direction.
	category := resolveCategory(text, words, direction, categories)

	// 5. Clean the description out of what remains.
	description := cleanDescription(text, category)

	// 6. Resolve the date.
	date := extractDate(text, now)

	// 7. Detect a payment account, if any.
	account := extractAccount(text)

	return &ParsedTransaction{
		Amount:      amount,
		Description: description,
		Date:        date,
		Category:    category,
		Account:     account,
		Direction:   direction,
	}, nil
}
