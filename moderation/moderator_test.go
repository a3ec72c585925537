package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModerator_Censors_Plain_Word(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"duck"}, '*')
	req.NoError(err)

	censored := moderator.Censor("what the duck is going on")

	req.Equal("what the **** is going on", censored)
}

func TestModerator_Is_Case_Insensitive(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"duck"}, '*')
	req.NoError(err)

	req.Equal("****", moderator.Censor("DuCk"))
}

func TestModerator_Matches_Through_Punctuation(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"duck"}, '*')
	req.NoError(err)

	// Punctuation inside the word is censored along with it
	censored := moderator.Censor("you d.u-ck !")

	req.Equal("you ****** !", censored)
}

func TestModerator_Leaves_Clean_Content_Untouched(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"duck"}, '*')
	req.NoError(err)

	content := "a perfectly polite sentence"

	req.Equal(content, moderator.Censor(content))
	req.Equal("", moderator.Censor(""))
	req.Equal("...", moderator.Censor("..."))
}

func TestModerator_Censors_Multiple_Words(t *testing.T) {
	req := require.New(t)
	moderator, err := NewModerator([]string{"duck", "goose"}, '#')
	req.NoError(err)

	censored := moderator.Censor("duck duck goose")

	req.Equal("#### #### #####", censored)
}
