package entities

// Client is a shop customer.
//
// The password is stored and compared as plaintext; hashing it would change
// the persisted document format. CPF is optional and, once validated, kept in
// the formatted form NNN.NNN.NNN-NN.
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}
