package model

// Static dataset shown when the document store is unreachable or not yet
// configured. Constructors return fresh slices so a run can never mutate
// another run's fallback.

func SampleRecommendations() []Recommendation {
	return []Recommendation{
		{
			Name: "삼성전자", Grade: "A+", Timeframe: "중기",
			Reason:   "HBM 전환 가속 및 파운드리 수주 회복 사이클 진입. 저점 분할매수 구간.",
			Featured: true,
		},
		{
			Name: "SK하이닉스", Grade: "A", Timeframe: "단기",
			Reason: "HBM3E 독점 공급 지위 유지. 고수익성 구조 지속.",
		},
		{
			Name: "NAVER", Grade: "B+", Timeframe: "장기",
			Reason: "HyperCLOVA X B2B 전환 가속. AI 수익화 초입 구간.",
		},
	}
}

// ApplySample fills the document-store half of the dashboard with the
// sample dataset. Index quotes are not touched; they come from the feed.
func ApplySample(d *Dashboard) {
	d.Summary = []string{
		"미 연준 금리 동결 시사에 코스피·나스닥 동반 상승. 외국인 순매수 전환이 지수 방어에 기여했다.",
		"AI 반도체 섹터 급등. 엔비디아 실적 서프라이즈로 SK하이닉스·삼성전자 HBM 관련주 강세.",
		"원/달러 환율 1,310원대 안정. 수출주 밸류에이션 개선 기대감이 코스피 안착을 이끌었다.",
	}
	d.MarketStrength = "강세"
	d.Sectors = []SectorMove{
		{Name: "반도체", Change: "+3.42%", Value: 3.42},
		{Name: "AI·소프트웨어", Change: "+2.81%", Value: 2.81},
		{Name: "2차전지", Change: "+2.20%", Value: 2.20},
		{Name: "바이오", Change: "+1.58%", Value: 1.58},
		{Name: "금융", Change: "-0.84%", Value: -0.84},
		{Name: "건설·부동산", Change: "-1.43%", Value: -1.43},
	}
	d.Stocks = []StockHighlight{
		{Name: "SK하이닉스", Reason: "HBM3E 양산 확대", Price: "185,400", Change: "+5.23%", Pos: true},
		{Name: "한미반도체", Reason: "TC본더 수주 체결", Price: "94,800", Change: "+8.71%", Pos: true},
		{Name: "삼성SDI", Reason: "유럽 수요 둔화", Price: "312,000", Change: "-3.12%", Pos: false},
		{Name: "카카오페이", Reason: "해외결제 서비스 확대", Price: "24,650", Change: "+4.46%", Pos: true},
	}
	d.News = []NewsItem{
		{Time: "09:02", Headline: "연준 1월 의사록 — 금리인하 서두를 필요 없다 기조 재확인", Tag: "통화정책"},
		{Time: "10:15", Headline: "엔비디아 블랙웰 GPU 공급난 — 국내 HBM 기업 반사이익 기대", Tag: "반도체"},
		{Time: "11:33", Headline: "정부 밸류업 2차 프로그램 발표 — 자사주 소각 의무화 논의", Tag: "정책"},
		{Time: "13:47", Headline: "BYD 국내 출시 재연기 — 국산 완성차·배터리주 단기 수혜", Tag: "자동차"},
	}
	d.Recommendations = SampleRecommendations()
}
