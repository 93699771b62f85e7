package client

import "encoding/json"

// GraphQL documents of the satellite console API.
const (
	getUserQuery = `query {
	user {
		fullName
		shortName
		email
	}
}`

	updateAccountMutation = `mutation ($input: UserInput!) {
	updateAccount(input: $input) {
		fullName
		shortName
		email
	}
}`

	changePasswordMutation = `mutation ($password: String!, $newPassword: String!) {
	changePassword(password: $password, newPassword: $newPassword) {
		email
	}
}`

	deleteAccountMutation = `mutation ($password: String!) {
	deleteAccount(password: $password) {
		email
	}
}`
)

// graphQLError and graphQLResponse mirror the response envelope; the
// transport inspects it before data is decoded.
type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError   `json:"errors"`
}
