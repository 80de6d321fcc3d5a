package notificationerrors

import (
	"net/http"

	"github.com/ShivaniDebbadwar/Nexografix-Srv/internal/shared/apperror"
)

var (
	ErrNotFound = apperror.New(
		apperror.CodeNotFound,
		"notification not found",
		http.StatusNotFound,
	)
	ErrNotRecipient = apperror.New(
		apperror.CodeForbidden,
		"notification belongs to another user",
		http.StatusForbidden,
	)
)
