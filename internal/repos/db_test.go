package repos

import "testing"

// Without the demo flag a fresh database gets the schema but no accounts, so
// no known credentials ever reach a production file.
func TestOpenDB_NoDemoSeedByDefault(t *testing.T) {
	db, err := OpenDB(":memory:", false)
	if err != nil {
		t.Fatal(err)
	}

	for _, table := range []string{"companies", "ongs", "products", "donations"} {
		var n int
		if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
			t.Fatalf("schema missing table %s: %v", table, err)
		}
		if n != 0 {
			t.Fatalf("table %s seeded without SEED_DEMO: %d rows", table, n)
		}
	}
}

func TestOpenDB_SeedIsIdempotent(t *testing.T) {
	db, err := OpenDB(":memory:", true)
	if err != nil {
		t.Fatal(err)
	}
	var before int
	if err := db.Get(&before, `SELECT COUNT(*) FROM companies`); err != nil {
		t.Fatal(err)
	}
	if before == 0 {
		t.Fatal("demo seed missing with flag set")
	}
	if err := seedIfEmpty(db); err != nil {
		t.Fatal(err)
	}
	var after int
	if err := db.Get(&after, `SELECT COUNT(*) FROM companies`); err != nil {
		t.Fatal(err)
	}
	if after != before {
		t.Fatalf("repeat seed duplicated rows: %d -> %d", before, after)
	}
}
