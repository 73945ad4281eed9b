package utils

import (
	"brokerage-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func collapseInnerWhitespace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

func SanitizeCreateLeadRequest(request *requests.CreateLead) {
	request.Name = collapseInnerWhitespace(request.Name)
	request.Contact = strings.TrimSpace(request.Contact)
	request.Note = strings.TrimSpace(request.Note)
	request.Page = strings.TrimSpace(request.Page)
	request.Coverages = cleanWhiteSpaceFromEachStringOfAnArray(request.Coverages)
}
