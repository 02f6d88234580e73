package enumtable_test

import (
	"testing"

	"github.com/on-the-ground/enum_table_go/enumtable"
)

func benchmarkLookup(b *testing.B, table enumtable.Table[color, string]) {
	b.Helper()
	for i := 0; i < b.N; i++ {
		_, _ = table.Lookup(colors[i%len(colors)])
	}
}

func BenchmarkDenseLookup(b *testing.B) {
	enumtable.MustDeclare(colors, nil)
	table, err := enumtable.Names[color]()
	if err != nil {
		b.Fatal(err)
	}
	benchmarkLookup(b, table)
}

func BenchmarkSparseLookup(b *testing.B) {
	enumtable.MustDeclare(colors, nil)
	table, err := enumtable.Names[color](enumtable.NewConfig(enumtable.StrategySparse, nil))
	if err != nil {
		b.Fatal(err)
	}
	benchmarkLookup(b, table)
}

func BenchmarkSparseLookupParallel(b *testing.B) {
	enumtable.MustDeclare(colors, nil)
	table, err := enumtable.Names[color](enumtable.NewConfig(enumtable.StrategySparse, nil))
	if err != nil {
		b.Fatal(err)
	}
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = table.Lookup(colors[i%len(colors)])
			i++
		}
	})
}

func BenchmarkNaiveMapLookup(b *testing.B) {
	m := map[color]string{}
	for _, c := range colors {
		m[c] = c.String()
	}
	for i := 0; i < b.N; i++ {
		_ = m[colors[i%len(colors)]]
	}
}
