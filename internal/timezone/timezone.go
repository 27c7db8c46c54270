// Pacote timezone centraliza a resolução de fuso horário. Todas as
// janelas de atendimento e slots são ancorados no fuso da barbearia,
// nunca no fuso do servidor.
package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

// IsValid aceita apenas identificadores IANA carregáveis (ex.:
// "America/Sao_Paulo"). String vazia é inválida: o fuso é configuração
// obrigatória da barbearia.

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve o fuso ou cai no DefaultTimezone. Usado apenas em
// caminhos de leitura; a escrita valida com IsValid antes de persistir.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
