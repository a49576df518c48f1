package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPgid tests placement-group id parsing
func TestPgid(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{name: "simple", value: "0.5a"},
		{name: "large pool", value: "12.abcDEF"},
		{name: "missing dot", value: "05a", wantErr: true},
		{name: "empty id", value: "0.", wantErr: true},
		{name: "non-numeric pool", value: "x.5a", wantErr: true},
		{name: "non-hex id", value: "0.5g", wantErr: true},
		{name: "negative pool", value: "-1.5a", wantErr: true},
		{name: "not a string", value: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Pgid{}.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestName tests daemon name parsing
func TestName(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{name: "mon name", value: "mon.a"},
		{name: "osd name", value: "osd.12"},
		{name: "mds name", value: "mds.alpha"},
		{name: "client name", value: "client.admin"},
		{name: "bare osd id", value: "3"},
		{name: "unknown type", value: "moon.a", wantErr: true},
		{name: "missing id", value: "mon.", wantErr: true},
		{name: "missing dot", value: "mon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Name{}.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestOsdName tests osd name parsing
func TestOsdName(t *testing.T) {
	assert.NoError(t, OsdName{}.Validate("osd.0"))
	assert.NoError(t, OsdName{}.Validate("42"))
	assert.NoError(t, OsdName{}.Validate(42))
	assert.Error(t, OsdName{}.Validate("osd.x"))
	assert.Error(t, OsdName{}.Validate("mon.0"))
	assert.Error(t, OsdName{}.Validate("-1"))
	assert.Error(t, OsdName{}.Validate(-1))
}

// TestUUID tests canonical UUID parsing
func TestUUID(t *testing.T) {
	assert.NoError(t, UUID{}.Validate("6aa5f236-82ed-4b41-a465-98fee837a079"))
	assert.Error(t, UUID{}.Validate("6aa5f23682ed4b41a46598fee837a079"), "unhyphenated form is rejected")
	assert.Error(t, UUID{}.Validate("{6aa5f236-82ed-4b41-a465-98fee837a079}"))
	assert.Error(t, UUID{}.Validate("not-a-uuid"))
	assert.Error(t, UUID{}.Validate(7))
}

// TestIPAddr tests address parsing with optional port and nonce
func TestIPAddr(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{name: "bare v4", value: "10.0.0.1"},
		{name: "v4 with port", value: "10.0.0.1:6789"},
		{name: "v4 with port and nonce", value: "10.0.0.1:6789/12345"},
		{name: "bare v6", value: "2001:db8::1"},
		{name: "bracketed v6 with port", value: "[2001:db8::1]:6789"},
		{name: "bracketed v6 no port", value: "[2001:db8::1]"},
		{name: "hostname rejected", value: "mon-a.example.com:6789", wantErr: true},
		{name: "bad port", value: "10.0.0.1:99999", wantErr: true},
		{name: "bad nonce", value: "10.0.0.1:6789/abc", wantErr: true},
		{name: "empty", value: "", wantErr: true},
		{name: "not a string", value: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IPAddr{}.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestEntityAddr tests that either an address or a daemon name passes
func TestEntityAddr(t *testing.T) {
	assert.NoError(t, EntityAddr{}.Validate("10.0.0.1:6789/3"))
	assert.NoError(t, EntityAddr{}.Validate("osd.3"))
	assert.Error(t, EntityAddr{}.Validate("neither one"))
	assert.Error(t, EntityAddr{}.Validate(3.5))
}
