package utils

import "github.com/workearnest-byte/MoMo-More/internal/pkg/models"

func GetErrorCode(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorCode()
	}
	return "MOMOMORE_INTERNAL_ERROR"
}
