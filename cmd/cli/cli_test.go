package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/amirasaad/parcels/pkg/pricing"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	rc := NewRootCommand()
	var names []string
	for _, c := range rc.baseCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "price", "rate"}, names)

	flag := rc.baseCmd.PersistentFlags().Lookup(envFileFlag)
	if assert.NotNil(t, flag) {
		assert.Equal(t, ".env", flag.DefValue)
	}
}

func TestPrintRunResult(t *testing.T) {
	var buf bytes.Buffer
	id := uuid.New()
	printRunResult(&buf, pricing.RunResult{RunID: id, Priced: 3, Skipped: 1, Duration: 2 * time.Second})
	out := buf.String()
	assert.Contains(t, out, id.String()+" committed")
	assert.Contains(t, out, "priced:   3")
	assert.Contains(t, out, "skipped:  1")

	buf.Reset()
	printRunResult(&buf, pricing.RunResult{RunID: id, Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "rolled back")
}

func TestPrintRate(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	printRate(&buf, "USD", 95.5, &domain.CachedRate{
		Value: 95.5, Source: "cbr", FetchedAt: now, ExpiresAt: now.Add(time.Hour),
	}, now)
	assert.Contains(t, buf.String(), "USD rate: 95.5000")
	assert.Contains(t, buf.String(), "source:     cbr")
	assert.Contains(t, buf.String(), "expires in: 1h0m0s")

	buf.Reset()
	printRate(&buf, "USD", 90, nil, now)
	assert.Contains(t, buf.String(), "fallback value in use")
}
