package masks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCPF(t *testing.T) {
	t.Run("should format progressively while typing", func(t *testing.T) {
		cases := map[string]string{
			"":            "",
			"1":           "1",
			"123":         "123",
			"1234":        "123.4",
			"123456":      "123.456",
			"1234567":     "123.456.7",
			"123456789":   "123.456.789",
			"1234567890":  "123.456.789-0",
			"12345678901": "123.456.789-01",
		}
		for in, want := range cases {
			assert.Equal(t, want, FormatCPF(in), "input %q", in)
		}
	})

	t.Run("should ignore non-digits and truncate to 11 digits", func(t *testing.T) {
		assert.Equal(t, "123.456.789-01", FormatCPF("123.456.789-01999"))
		assert.Equal(t, "123.456.789-01", FormatCPF("a1b2c3d4e5f6g7h8i9j0k1x"))
	})

	t.Run("stripping separators should return the digits truncated to 11", func(t *testing.T) {
		digits := "52998224725"
		for l := 0; l <= len(digits); l++ {
			in := digits[:l]
			out := FormatCPF(in)
			stripped := strings.NewReplacer(".", "", "-", "").Replace(out)
			assert.Equal(t, in, stripped, "prefix length %d", l)
		}
	})
}

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"1":           "(1",
		"11":          "(11)",
		"119":         "(11) 9",
		"11987":       "(11) 987",
		"1198765":     "(11) 98765",
		"11987654":    "(11) 98765-4",
		"11987654321": "(11) 98765-4321",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPhone(in), "input %q", in)
	}

	assert.Equal(t, "(11) 98765-4321", FormatPhone("(11) 98765-4321"), "formatting is idempotent")
}

func TestIsValidCPF(t *testing.T) {
	t.Run("should accept a CPF with correct check digits", func(t *testing.T) {
		assert.True(t, IsValidCPF("52998224725"))
		assert.True(t, IsValidCPF("529.982.247-25"), "masked input is normalized first")
	})

	t.Run("should reject wrong check digits", func(t *testing.T) {
		assert.False(t, IsValidCPF("12345678900"))
	})

	t.Run("should reject repeated-digit sequences", func(t *testing.T) {
		for d := '0'; d <= '9'; d++ {
			cpf := strings.Repeat(string(d), 11)
			assert.False(t, IsValidCPF(cpf), cpf)
		}
	})

	t.Run("should reject anything that is not 11 digits", func(t *testing.T) {
		assert.False(t, IsValidCPF(""))
		assert.False(t, IsValidCPF("5299822472"))
		assert.False(t, IsValidCPF("529982247255"))
	})
}

func TestIsValidPhoneBR(t *testing.T) {
	assert.True(t, IsValidPhoneBR("11987654321"))
	assert.True(t, IsValidPhoneBR("1133334444"))
	assert.True(t, IsValidPhoneBR("(11) 98765-4321"))

	assert.False(t, IsValidPhoneBR("1111111111"), "repeated digits")
	assert.False(t, IsValidPhoneBR("119876543"), "9 digits")
	assert.False(t, IsValidPhoneBR("119876543210"), "12 digits")
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.com"))
	assert.True(t, IsValidEmail("  USER@Example.COM  "), "trimmed and lowercased before matching")

	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("a b@c.com"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("123456"))
	assert.False(t, IsStrongPassword("12345"))
	assert.False(t, IsStrongPassword(""))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "José da Silva", SanitizeName("José  da  Silva"))
	assert.Equal(t, "Maria D'Ávila", SanitizeName("Maria2 D'Ávila_"))
	assert.Equal(t, "J. R. Souza-Neto", SanitizeName("  J. R. Souza-Neto  "))
	assert.Equal(t, "", SanitizeName("1234_!@#"))
}

func TestSanitizeNameLive(t *testing.T) {
	t.Run("should preserve a single trailing space while typing", func(t *testing.T) {
		assert.Equal(t, "José ", SanitizeNameLive("José "))
		assert.Equal(t, "José ", SanitizeNameLive("José  "))
	})

	t.Run("should strip leading spaces only", func(t *testing.T) {
		assert.Equal(t, "José", SanitizeNameLive("  José"))
	})

	t.Run("progressive typing never yields double internal spaces", func(t *testing.T) {
		typed := "José  da  Silva "
		out := ""
		for _, r := range typed {
			out = SanitizeNameLive(out + string(r))
			assert.NotContains(t, strings.TrimRight(out, " "), "  ")
		}
		assert.Equal(t, "José da Silva ", out)
	})
}

func TestIsValidFullName(t *testing.T) {
	assert.True(t, IsValidFullName("José  da  Silva"))
	assert.True(t, IsValidFullName("Ana Souza"))

	assert.False(t, IsValidFullName("José"), "single part")
	assert.False(t, IsValidFullName("Ana B"), "part shorter than two runes")
	assert.False(t, IsValidFullName(""))
	assert.False(t, IsValidFullName("12 34"))
}
