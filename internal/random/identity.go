package random

import (
	"fmt"
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
)

var (
	firstNames = []string{
		"Ana", "Beatriz", "Bruna", "Camila", "Carla", "Daniela", "Fernanda", "Gabriela", "Helena", "Isabela",
		"Juliana", "Larissa", "Luana", "Mariana", "Natália", "Patrícia", "Rafaela", "Sofia", "Tatiane", "Vitória",
		"André", "Bruno", "Carlos", "Daniel", "Eduardo", "Felipe", "Gabriel", "Gustavo", "Henrique", "Igor",
		"João", "Lucas", "Marcelo", "Mateus", "Nicolas", "Paulo", "Rafael", "Rodrigo", "Thiago", "Vinícius",
	}
	lastNames = []string{
		"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira", "Lima", "Gomes",
		"Costa", "Ribeiro", "Martins", "Carvalho", "Almeida", "Lopes", "Soares", "Fernandes", "Vieira", "Barbosa",
		"Rocha", "Dias", "Nascimento", "Andrade", "Moreira", "Nunes", "Marques", "Machado", "Mendes", "Freitas",
		"Cardoso", "Ramos", "Teixeira", "Araújo", "Pinto", "Moura", "Cavalcanti", "Monteiro", "Correia", "Campos",
	}
	companySuffixes = []string{
		"Ltda.", "S.A.", "Comércio Ltda.", "Indústria S.A.", "e Filhos", "Serviços Ltda.",
		"Logística Ltda.", "Tecnologia S.A.", "Distribuidora Ltda.", "EIRELI",
	}
)

const plateLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func (s *Source) FirstName() string {
	return Pick(s, firstNames)
}

func (s *Source) LastName() string {
	return Pick(s, lastNames)
}

// Name returns a full name, with a second surname about a third of the time.
func (s *Source) Name() string {
	if s.Chance(0.35) {
		return s.FirstName() + " " + s.LastName() + " " + s.LastName()
	}
	return s.FirstName() + " " + s.LastName()
}

func (s *Source) Company() string {
	if s.Chance(0.3) {
		return s.LastName() + " & " + s.LastName() + " " + Pick(s, companySuffixes)
	}
	return s.LastName() + " " + Pick(s, companySuffixes)
}

// Plate returns a Mercosul-format license plate (LLLNLNN).
func (s *Source) Plate() string {
	var b strings.Builder
	b.Grow(7)
	for i := 0; i < 3; i++ {
		b.WriteByte(plateLetters[s.rng.Intn(len(plateLetters))])
	}
	b.WriteByte(byte('0' + s.rng.Intn(10)))
	b.WriteByte(plateLetters[s.rng.Intn(len(plateLetters))])
	fmt.Fprintf(&b, "%02d", s.rng.Intn(100))
	return b.String()
}

// CNPJ returns a formatted company registration number with valid check digits.
func (s *Source) CNPJ() string {
	digits := make([]int, 14)
	for i := 0; i < 8; i++ {
		digits[i] = s.rng.Intn(10)
	}
	// headquarters branch 0001
	digits[11] = 1
	digits[12] = cnpjCheckDigit(digits[:12])
	digits[13] = cnpjCheckDigit(digits[:13])

	var b strings.Builder
	for i, d := range digits {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('/')
		case 12:
			b.WriteByte('-')
		}
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

func cnpjCheckDigit(digits []int) int {
	weight := len(digits) - 7
	sum := 0
	for _, d := range digits {
		sum += d * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

// TicketID returns the first 8 hex characters of a UUIDv4 built from the
// source, so seeded runs reproduce the same ids.
func (s *Source) TicketID() string {
	b := make([]byte, 16)
	s.rng.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	u, err := uuid.FromBytes(b)
	if err != nil {
		return fmt.Sprintf("%08x", s.rng.Uint32())
	}
	return u.String()[:8]
}

// Sentence returns free text. It draws from faker's own generator and is
// not reproduced by a seed.
func (s *Source) Sentence() string {
	return strings.TrimSpace(faker.Sentence())
}
