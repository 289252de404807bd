package rest

import "github.com/rocketscienceinc/arcade-backend/internal/entity"

// gameLink is one card on the landing page and the static directory it is served from.
type gameLink struct {
	Slug        string
	Icon        string
	Title       string
	Description string
	Features    []string
}

var games = []gameLink{
	{
		Slug:        entity.GameFlags,
		Icon:        "🏁",
		Title:       "백기청기 게임",
		Description: "음성 명령에 따라 빠르게 반응하는 반응 속도 게임입니다.",
		Features:    []string{"음성 출력", "난이도 증가 시스템", "변주 명령어"},
	},
	{
		Slug:        entity.GameOmok,
		Icon:        "⚫",
		Title:       "오목 게임",
		Description: "5개를 연속으로 놓으면 승리합니다. 6목은 인정되지 않습니다.",
		Features:    []string{"15x15 오목판", "승리 조건 검사", "게임 리셋 기능"},
	},
	{
		Slug:        entity.GameOddColor,
		Icon:        "🎨",
		Title:       "다른색 맞추기",
		Description: "그리드에서 다른 색을 찾아 클릭하는 관찰력 게임입니다.",
		Features:    []string{"4x4 및 3x3 그리드", "30초 시간 제한", "연속 정답 보너스"},
	},
	{
		Slug:        entity.GameColorMatch,
		Icon:        "🎯",
		Title:       "같은색 맞추기",
		Description: "카드를 뒤집어서 같은 색을 찾는 메모리 게임입니다.",
		Features:    []string{"10라운드 진행", "라운드별 카드 수 증가", "점수 시스템"},
	},
	{
		Slug:        entity.GameTiles,
		Icon:        "🔢",
		Title:       "2048 게임",
		Description: "숫자 타일을 합쳐서 2048을 만드는 퍼즐 게임입니다.",
		Features:    []string{"4x4 그리드", "화살표 키와 스와이프", "최고점수 저장"},
	},
}
