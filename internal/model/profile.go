package model

import "strings"

// AccountType is how the partner wants to receive commissions.
type AccountType string

// Account types.
const (
	AccountChecking  AccountType = "Conta Corrente"
	AccountSavings   AccountType = "Conta Poupança"
	AccountPixCPF    AccountType = "PIX - Chave CPF"
	AccountPixCNPJ   AccountType = "PIX - Chave CNPJ"
	AccountPixEmail  AccountType = "PIX - Chave E-mail"
	AccountPixRandom AccountType = "PIX - Chave Aleatória"
)

// AccountTypes lists the account types in display order.
var AccountTypes = []AccountType{
	AccountChecking,
	AccountSavings,
	AccountPixCPF,
	AccountPixCNPJ,
	AccountPixEmail,
	AccountPixRandom,
}

// IsPix reports whether the account type is a PIX key.
func (a AccountType) IsPix() bool {
	return strings.Contains(string(a), "PIX")
}

// IsBankAccount reports whether the account type is a bank account.
func (a AccountType) IsBankAccount() bool {
	return a == AccountChecking || a == AccountSavings
}

// PaymentInfo holds where commissions are paid.
type PaymentInfo struct {
	AccountType AccountType
	PixKey      string
	Bank        string
	Agency      string
	Account     string
	HolderName  string
	HolderCPF   string
}

// Profile is the partner's registration data.
type Profile struct {
	PartnerID string
	FullName  string
	Email     string
	Phone     string
	Payment   PaymentInfo
}

// Initials returns up to two initials of the profile's full name.
func Initials(fullName string) string {
	initials := make([]rune, 0, 2)
	for _, part := range strings.Fields(fullName) {
		initials = append(initials, []rune(part)[0])
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
