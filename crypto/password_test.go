package crypto

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := GenerateHash("correct horse battery staple")
	if err != nil {
		t.Fatalf("GenerateHash() error = %v", err)
	}

	if !CheckPassword("correct horse battery staple", hash) {
		t.Error("CheckPassword() rejected the original password")
	}
	if CheckPassword("wrong password", hash) {
		t.Error("CheckPassword() accepted a wrong password")
	}
	if CheckPassword("anything", "") {
		t.Error("CheckPassword() accepted an empty hash")
	}
}
