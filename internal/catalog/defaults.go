package catalog

import "timebank/internal/domain"

var defaults = []domain.Listing{
	{
		ID:          "1",
		Name:        "Moonlight Valley",
		Region:      "강원",
		Location:    "강원도 평창군 대관령면",
		Price:       350000,
		Rating:      4.9,
		Description: "쏟아지는 별빛 아래, 최고급 에어스트림에서의 하룻밤. 프라이빗한 계곡과 숲이 어우러진 공간에서 진정한 휴식을 경험하세요.",
		Image:       "/images/curated/curated_1_gapyeong_dusk_1600x1200.png",
		Gallery: []string{
			"/images/curated/curated_1_gapyeong_dusk_1600x1200.png",
			"/images/curated/curated_1_gapyeong_dawn_1600x1200.png",
		},
		Amenities: []string{"wifi", "coffee", "fire", "ac"},
		Tags:      []string{"Luxury", "Stargazing", "Couple"},
	},
	{
		ID:          "2",
		Name:        "Ocean Cliff Edge",
		Region:      "제주",
		Location:    "제주특별자치도 서귀포시",
		Price:       420000,
		Rating:      4.8,
		Description: "제주 남쪽 바다의 파도 소리를 들으며 잠드는 곳. 절벽 위 프라이빗 데크에서 바라보는 일몰은 잊지 못할 추억을 선사합니다.",
		Image:       "/images/curated/curated_2_yangpyeong_dusk_1600x1200.png",
		Gallery: []string{
			"/images/curated/curated_2_yangpyeong_dusk_1600x1200.png",
			"/images/curated/curated_2_yangpyeong_dawn_1600x1200.png",
		},
		Amenities: []string{"wifi", "coffee", "wind"},
		Tags:      []string{"Ocean View", "Healing", "Premium"},
	},
	{
		ID:          "3",
		Name:        "Forest Sanctuary",
		Region:      "경기",
		Location:    "경기도 가평군 북면",
		Price:       280000,
		Rating:      4.7,
		Description: "서울에서 1시간, 울창한 잣나무 숲속의 비밀 요새. 빈티지 카라반의 감성과 호텔급 어메니티의 완벽한 조화.",
		Image:       "/images/curated/curated_3_jeju_dusk_1600x1200.png",
		Gallery: []string{
			"/images/curated/curated_3_jeju_dusk_1600x1200.png",
			"/images/curated/curated_3_jeju_dawn_1600x1200.png",
		},
		Amenities: []string{"fire", "coffee", "ac"},
		Tags:      []string{"Forest", "Vintage", "BBQ"},
	},
	{
		ID:          "4",
		Name:        "Sunset Lake",
		Region:      "충청",
		Location:    "충청북도 충주시",
		Price:       310000,
		Rating:      4.8,
		Description: "잔잔한 호수 위로 비치는 노을을 감상하며 즐기는 카라반 캠핑. 수상 레저와 함께 역동적인 낮과 고요한 밤을 모두 즐기세요.",
		Image:       "/images/curated/curated_4_pocheon_dusk_1600x1200.png",
		Gallery: []string{
			"/images/curated/curated_4_pocheon_dusk_1600x1200.png",
			"/images/curated/curated_4_pocheon_dawn_1600x1200.png",
		},
		Amenities: []string{"wifi", "fire"},
		Tags:      []string{"Lake", "Activity", "Family"},
	},
	{
		ID:          "5",
		Name:        "Nomad's Desert",
		Region:      "경상",
		Location:    "경상북도 경주시",
		Price:       380000,
		Rating:      4.9,
		Description: "이국적인 사막 분위기의 글램핑 사이트. 밤이 되면 쏟아지는 별과 함께 모닥불을 피우며 낭만적인 시간을 보내세요.",
		Image:       "/images/curated/curated_5_taean_dusk_1600x1200.png",
		Gallery: []string{
			"/images/curated/curated_5_taean_dusk_1600x1200.png",
			"/images/curated/curated_5_taean_dawn_1600x1200.png",
		},
		Amenities: []string{"fire", "coffee", "wind", "ac"},
		Tags:      []string{"Exotic", "Photo", "Glamping"},
	},
	{
		ID:          "6",
		Name:        "Cloud 9 High",
		Region:      "강원",
		Location:    "강원도 정선군",
		Price:       450000,
		Rating:      5.0,
		Description: "해발 800m 고지대에서 구름을 내려다보는 환상적인 뷰. 최고급 모터홈이 제공하는 럭셔리한 편안함.",
		Image:       "/images/curated/curated_6_gangneung_dusk_1600x1200.png",
		Gallery: []string{
			"/images/curated/curated_6_gangneung_dusk_1600x1200.png",
			"/images/curated/curated_6_gangneung_dawn_1600x1200.png",
		},
		Amenities: []string{"wifi", "coffee", "ac", "fire"},
		Tags:      []string{"Mountain", "Luxury", "Silence"},
	},
}

// Defaults returns a fresh copy of the built-in collection.
func Defaults() []domain.Listing {
	out := make([]domain.Listing, len(defaults))
	for i, l := range defaults {
		out[i] = l.Clone()
	}
	return out
}
