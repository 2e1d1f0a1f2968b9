// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package multi_test

import (
	"testing"

	"github.com/db47h/duration"
	"github.com/db47h/duration/multi"
	"github.com/db47h/duration/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isSpace(b byte) bool { return b == ' ' }

func TestParseSumsSegments(t *testing.T) {
	cfg := duration.NewConfigBuilder().ParseMultiple(isSpace, nil).Build()
	p := duration.NewParser(cfg, units.Default())

	got, err := multi.Parse(p, "1s 500ms")
	require.NoError(t, err)
	assert.Equal(t, duration.Duration{Seconds: 1, Nanos: 500_000_000}, got)
}

func TestParseWithConjunction(t *testing.T) {
	cfg := duration.NewConfigBuilder().ParseMultiple(isSpace, []string{"and"}).Build()
	p := duration.NewParser(cfg, units.Default())

	got, err := multi.Parse(p, "1h and 30m")
	require.NoError(t, err)
	assert.Equal(t, duration.Duration{Seconds: 3600 + 1800}, got)
}

func TestParseWithAgoOnLastSegment(t *testing.T) {
	cfg := duration.NewConfigBuilder().
		AllowNegative().
		ParseMultiple(isSpace, nil).
		AllowAgo(isSpace).
		Build()
	p := duration.NewParser(cfg, units.Default())

	got, err := multi.Parse(p, "2h ago")
	require.NoError(t, err)
	assert.Equal(t, duration.Duration{Seconds: 2 * 3600, Negative: true}, got)
}

func TestParseRequiresDelimiterBetweenSegments(t *testing.T) {
	cfg := duration.NewConfigBuilder().ParseMultiple(isSpace, nil).Build()
	p := duration.NewParser(cfg, units.Default())

	_, err := multi.Parse(p, "1s")
	require.NoError(t, err)

	_, err = multi.Parse(p, "1s500ms")
	require.Error(t, err)
}

func TestParseRejectsTrailingDelimiter(t *testing.T) {
	cfg := duration.NewConfigBuilder().ParseMultiple(isSpace, nil).Build()
	p := duration.NewParser(cfg, units.Default())

	_, err := multi.Parse(p, "1s ")
	require.Error(t, err)
}

func TestParseEmptyInput(t *testing.T) {
	cfg := duration.NewConfigBuilder().ParseMultiple(isSpace, nil).Build()
	p := duration.NewParser(cfg, units.Default())

	_, err := multi.Parse(p, "")
	var pe *duration.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, duration.Empty, pe.Kind)
}

func TestParseRequiresParseMultipleEnabled(t *testing.T) {
	p := duration.NewParser(duration.NewConfig(), units.Default())
	_, err := multi.Parse(p, "1s")
	require.Error(t, err)
}
