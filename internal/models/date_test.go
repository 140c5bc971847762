package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	movie := Movie{ID: 1, Title: "Dune"}
	date := NewDate(2021, time.October, 22)
	movie.ReleaseDate = &date

	out, err := json.Marshal(movie)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"release_date":"2021-10-22"`)
}

func TestDate_MarshalJSON_Null(t *testing.T) {
	out, err := json.Marshal(Movie{ID: 1, Title: "Dune"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"release_date":null`)
	assert.Contains(t, string(out), `"genre_id":null`)
}

func TestDate_UnmarshalJSON(t *testing.T) {
	cases := map[string]string{
		"bare date": `"1999-03-31"`,
		"timestamp": `"1999-03-31T00:00:00Z"`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(input), &d))
			assert.Equal(t, "1999-03-31", d.String())
		})
	}

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"31/03/1999"`), &d))
}

func TestDate_Scan(t *testing.T) {
	var fromTime Date
	require.NoError(t, fromTime.Scan(time.Date(2010, time.July, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2010-07-16", fromTime.String())

	var fromString Date
	require.NoError(t, fromString.Scan("2010-07-16"))
	assert.Equal(t, fromTime, fromString)

	var fromBytes Date
	require.NoError(t, fromBytes.Scan([]byte("2010-07-16T00:00:00Z")))
	assert.Equal(t, fromTime, fromBytes)

	var null Date
	require.NoError(t, null.Scan(nil))
	assert.True(t, null.IsZero())

	var bad Date
	assert.Error(t, bad.Scan(42))
}

func TestUser_PasswordHashNotSerialized(t *testing.T) {
	out, err := json.Marshal(User{ID: 1, Username: "neo", Email: "neo@example.com", PasswordHash: "$2a$04$abc"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "password")
	assert.NotContains(t, string(out), "$2a$04$abc")
}

func TestMovieWithGenre_FlattensMovieFields(t *testing.T) {
	genre := "Sci-Fi"
	genreID := int64(1)
	out, err := json.Marshal(MovieWithGenre{
		Movie:     Movie{ID: 1, Title: "Dune", GenreID: &genreID},
		GenreName: &genre,
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, float64(1), decoded["id"])
	assert.Equal(t, "Dune", decoded["title"])
	assert.Equal(t, float64(1), decoded["genre_id"])
	assert.Equal(t, "Sci-Fi", decoded["genre_name"])
}
