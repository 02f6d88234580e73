package enumtable_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/enum_table_go/enumtable"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type color uint8

const (
	red color = iota
	green
	blue
)

func (c color) String() string {
	switch c {
	case red:
		return "Red"
	case green:
		return "Green"
	case blue:
		return "Blue"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

var colors = []color{red, green, blue}

type perm uint8

const (
	permA  perm = 1
	permB  perm = 2
	permC  perm = 4
	permAB perm = 3
)

var permNames = map[perm]string{permA: "A", permB: "B", permC: "C", permAB: "AB"}

// ticket is spread far beyond the dense ceiling.
type ticket uint32

var tickets = []ticket{1, 70000, 1 << 20}

type signed int8

var signeds = []signed{-1, 0, 1}

func declareColors(t *testing.T) *enumtable.Domain[color] {
	t.Helper()
	d, err := enumtable.Declare(colors, nil)
	require.NoError(t, err)
	return d
}

func declarePerms(t *testing.T) *enumtable.Domain[perm] {
	t.Helper()
	d, err := enumtable.Declare([]perm{permA, permB, permC, permAB}, func(p perm) string {
		return permNames[p]
	})
	require.NoError(t, err)
	return d
}

func declareTickets(t *testing.T) *enumtable.Domain[ticket] {
	t.Helper()
	d, err := enumtable.Declare(tickets, nil)
	require.NoError(t, err)
	return d
}

func declareSigneds(t *testing.T) *enumtable.Domain[signed] {
	t.Helper()
	d, err := enumtable.Declare(signeds, nil)
	require.NoError(t, err)
	return d
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

func sparseConfig() enumtable.Config {
	return enumtable.NewConfig(enumtable.StrategySparse, nil)
}
