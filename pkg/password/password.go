package password

import "golang.org/x/crypto/bcrypt"

// Hash genera un hash bcrypt de la contraseña con salt aleatorio por llamada.
// El hash resultante nunca es reversible.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compara la contraseña contra el hash almacenado en tiempo constante.
// Un hash malformado o una contraseña incorrecta devuelven false, nunca error:
// para el caller ambos casos son "credenciales inválidas".
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
