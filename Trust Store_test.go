/*
File Name:  Trust Store_test.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package core

import (
	"testing"

	"github.com/vicinet/core/store"
)

func TestTrustStoreRememberLookup(t *testing.T) {
	trustDB := &TrustStore{Database: store.NewMemoryStore()}

	if _, _, found := trustDB.Lookup("a"); found {
		t.Fatalf("empty store reported a record")
	}

	trustDB.Remember("a", "doctor", 0.8)

	competence, trust, found := trustDB.Lookup("a")
	if !found {
		t.Fatalf("remembered record not found")
	}
	if competence != "doctor" || trust != 0.8 {
		t.Fatalf("Lookup = %q %v", competence, trust)
	}

	// re-observation overwrites
	trustDB.Remember("a", "doctor", 0.3)
	if _, trust, _ := trustDB.Lookup("a"); trust != 0.3 {
		t.Fatalf("Remember did not overwrite: %v", trust)
	}

	trustDB.Forget("a")
	if _, _, found := trustDB.Lookup("a"); found {
		t.Fatalf("forgotten record still present")
	}
}
