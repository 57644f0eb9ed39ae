package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestListing_DaysOnMarket(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(10 * 24 * time.Hour)

	tests := []struct {
		name    string
		listing Listing
		want    float64
	}{
		{
			name:    "unsold counts to now",
			listing: Listing{CreatedAt: created},
			want:    10,
		},
		{
			name: "sold counts to sale",
			listing: Listing{
				CreatedAt: created,
				Sold:      true,
				SoldAt:    ptr(created.Add(36 * time.Hour)),
			},
			want: 1.5,
		},
		{
			name:    "created in the future clamps to zero",
			listing: Listing{CreatedAt: now.Add(time.Hour)},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, tt.listing.DaysOnMarket(now), 1e-9)
		})
	}
}

func TestListing_Owned(t *testing.T) {
	t.Parallel()

	assert.False(t, (&Listing{}).Owned())
	assert.False(t, (&Listing{OwnerID: ptr("")}).Owned())
	assert.True(t, (&Listing{OwnerID: ptr("u1")}).Owned())
}

func TestListing_Location(t *testing.T) {
	t.Parallel()

	assert.Nil(t, (&Listing{Latitude: ptr(40.0)}).Location())

	loc := (&Listing{Latitude: ptr(40.0), Longitude: ptr(-75.0)}).Location()
	require.NotNil(t, loc)
	assert.InDelta(t, 40.0, loc.Lat, 1e-9)
	assert.InDelta(t, -75.0, loc.Lon, 1e-9)
}

func TestCondition_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, ConditionUsed.Valid())
	assert.True(t, ConditionNew.Valid())
	assert.False(t, Condition("mint").Valid())
}

func TestSearchFilter_Key(t *testing.T) {
	t.Parallel()

	a := SearchFilter{Make: ptr("Honda"), Model: ptr("Civic"), YearMin: ptr(2018)}
	b := SearchFilter{Make: ptr("honda"), Model: ptr("CIVIC"), YearMin: ptr(2018)}
	c := SearchFilter{Make: ptr("Honda"), Model: ptr("Civic"), YearMin: ptr(2019)}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, "make=honda&model=civic&year_min=2018", a.Key())
	assert.True(t, SearchFilter{}.Empty())
	assert.False(t, a.Empty())
}

func TestGroupOf(t *testing.T) {
	t.Parallel()

	l := &Listing{Condition: ConditionUsed, Make: "Honda", Model: "Civic", Year: 2020}
	assert.Equal(t, GroupKey{Condition: ConditionUsed, Make: "Honda", Model: "Civic"}, GroupOf(l))
}
