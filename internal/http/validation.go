package http

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/bookcafe/internal/patch"
	"github.com/mrlokans/bookcafe/internal/validation"
)

var (
	validationOnce sync.Once
	validationErr  error
)

// setupValidation installs the shared rules on gin's validator once per process.
func setupValidation() error {
	validationOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validationErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		validationErr = validation.Register(v,
			[]any{
				patch.Field[string]{},
				patch.Field[int]{},
				patch.Field[bool]{},
				patch.Field[float64]{},
				patch.Field[[]uint]{},
				patch.Field[[]orderItemRequest]{},
			},
			[]any{
				bookUpdateRequest{},
				categoryUpdateRequest{},
				menuUpdateRequest{},
				orderUpdateRequest{},
			},
		)
	})
	return validationErr
}
