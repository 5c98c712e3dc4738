package domain

type Polarity string

const (
	PolarityPass Polarity = "pass"
	PolarityFail Polarity = "fail"
)

type Check string

const (
	CheckInvestment Check = "investment"
	CheckLiquidity  Check = "liquidity"
	CheckSaaS       Check = "saas"
	CheckStress     Check = "stress"
)

// Chaves de mensagem das recomendações (traduzidas na camada de apresentação)
const (
	MessageNPVOk    = "npv_ok"
	MessageNPVKo    = "npv_ko"
	MessageLiqOk    = "liq_ok"
	MessageLiqKo    = "liq_ko"
	MessageSaaSOk   = "saas_ok"
	MessageSaaSKo   = "saas_ko"
	MessageStressOk = "stress_ok"
	MessageStressKo = "stress_ko"
)

type Recommendation struct {
	Check      Check    `json:"check"`
	Polarity   Polarity `json:"polarity"`
	MessageKey string   `json:"message_key"`
}

func (r Recommendation) Passed() bool {
	return r.Polarity == PolarityPass
}
