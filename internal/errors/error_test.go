package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedRequest(t *testing.T) {
	cause := stderrors.New("multipart: NextPart: EOF")
	err := MalformedRequest(cause)

	assert.True(t, stderrors.Is(err, ErrMalformedRequest))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "multipart: NextPart: EOF", err.Error())
	assert.Equal(t, ErrMalformedRequest.Error(), MalformedRequest(nil).Error())
}
