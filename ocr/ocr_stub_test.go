//go:build !ocr

package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubNew(t *testing.T) {
	client, err := New()
	assert.Nil(t, client)
	assert.Equal(t, ErrOCRNotEnabled, err)
}

func TestStubClientMethods(t *testing.T) {
	var client *Client

	tokens, err := client.Tokens([]byte{0x89, 'P', 'N', 'G'})
	assert.Nil(t, tokens)
	assert.Equal(t, ErrOCRNotEnabled, err)

	assert.Equal(t, ErrOCRNotEnabled, client.SetLanguage("eng"))
	assert.Equal(t, ErrOCRNotEnabled, client.SetPageSegMode(PSM_AUTO))
	assert.NoError(t, client.Close())
}
