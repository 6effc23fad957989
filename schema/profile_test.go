package schema

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Profile
		wantErr bool
	}{
		{name: "Basic", input: "basic", want: ProfileBasic},
		{name: "Comfort", input: "comfort", want: ProfileComfort},
		{name: "Extended", input: "extended", want: ProfileExtended},
		{name: "MixedCase", input: "Extended", want: ProfileExtended},
		{name: "SurroundingSpace", input: "  comfort ", want: ProfileComfort},
		{name: "Unknown", input: "minimum", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfileString(t *testing.T) {
	assert.Equal(t, "basic", ProfileBasic.String())
	assert.Equal(t, "comfort", ProfileComfort.String())
	assert.Equal(t, "extended", ProfileExtended.String())
}

func TestProfileGuidelineID(t *testing.T) {
	assert.Equal(t, "urn:order-x.eu:1p0:basic", ProfileBasic.GuidelineID())
	assert.Equal(t, "urn:order-x.eu:1p0:comfort", ProfileComfort.GuidelineID())
	assert.Equal(t, "urn:order-x.eu:1p0:extended", ProfileExtended.GuidelineID())
}

func TestProfileListValued(t *testing.T) {
	assert.False(t, ProfileBasic.ListValued())
	assert.False(t, ProfileComfort.ListValued())
	assert.True(t, ProfileExtended.ListValued())
}
