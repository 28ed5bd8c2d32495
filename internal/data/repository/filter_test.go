package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now \\o/`, escapeLike(`50% off_now \o/`))
	assert.Equal(t, "acme", escapeLike("acme"))
}

func TestListFilterWhere(t *testing.T) {
	tests := []struct {
		name      string
		filter    ListFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    ListFilter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "search reuses one placeholder",
			filter:    ListFilter{Search: "acme"},
			wantWhere: " WHERE (name ILIKE $1 OR address ILIKE $1)",
			wantArgs:  []any{"%acme%"},
		},
		{
			name:      "search and status",
			filter:    ListFilter{Search: "a_b", Status: "active"},
			wantWhere: ` WHERE (name ILIKE $1 OR address ILIKE $1) AND status = $2`,
			wantArgs:  []any{`%a\_b%`, "active"},
		},
		{
			name: "equals skips empty values",
			filter: ListFilter{
				Status: "available",
				Equals: map[string]string{"category": "cleaning", "kind": ""},
			},
			wantWhere: " WHERE status = $1 AND category = $2",
			wantArgs:  []any{"available", "cleaning"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.where([]string{"name", "address"})
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildListQuery(t *testing.T) {
	query, args := buildListQuery(shopList, ListFilter{Search: "acme", Limit: 10, Offset: 20})

	assert.Equal(t,
		"SELECT "+shopColumns+" FROM shops WHERE (name ILIKE $1 OR address ILIKE $1)"+
			" ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3",
		query,
	)
	assert.Equal(t, []any{"%acme%", 10, 20}, args)
}

func TestBuildCountQuery(t *testing.T) {
	query, args := buildCountQuery(eventList, ListFilter{Status: "upcoming", Limit: 10})

	assert.Equal(t, "SELECT COUNT(*) FROM events WHERE status = $1", query)
	assert.Equal(t, []any{"upcoming"}, args)
}
