package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lintgrade/lintgrade/internal/domain"
	"github.com/lintgrade/lintgrade/internal/domain/scoring"
)

func TestSuggestIdentifier_Python(t *testing.T) {
	assert.Equal(t, "my_variable", scoring.SuggestIdentifier("myVariable", domain.Python))
	assert.Equal(t, "http_client", scoring.SuggestIdentifier("HTTPClient", domain.Python))
	assert.Equal(t, "already_snake", scoring.SuggestIdentifier("already_snake", domain.Python))
	assert.Equal(t, "x", scoring.SuggestIdentifier("x", domain.Python))
}

func TestSuggestIdentifier_JavaScript(t *testing.T) {
	assert.Equal(t, "myVariable", scoring.SuggestIdentifier("my_variable", domain.JavaScript))
	assert.Equal(t, "fetchUserData", scoring.SuggestIdentifier("fetch_user_data", domain.React))
	assert.Equal(t, "alreadyCamel", scoring.SuggestIdentifier("alreadyCamel", domain.JavaScript))
}
