package domain

import "fmt"

const unsplashSuffix = "?w=400&h=400&fit=crop"

var flowerImages = map[string][]string{
	"rose": {
		"https://images.unsplash.com/photo-1518882605630-8eb92f79670c" + unsplashSuffix,
		"https://images.unsplash.com/photo-1490750967868-88aa4486c946" + unsplashSuffix,
		"https://images.unsplash.com/photo-1455659817273-f96807779a8a" + unsplashSuffix,
	},
	"tulip": {
		"https://images.unsplash.com/photo-1520763185298-1b434c919102" + unsplashSuffix,
		"https://images.unsplash.com/photo-1589994160839-163cd867cfe8" + unsplashSuffix,
		"https://images.unsplash.com/photo-1582794543139-8ac9cb0f7b11" + unsplashSuffix,
	},
	"lily": {
		"https://images.unsplash.com/photo-1530092285049-1c42085fd395" + unsplashSuffix,
		"https://images.unsplash.com/photo-1606041008023-472dfb5e530f" + unsplashSuffix,
		"https://images.unsplash.com/photo-1560717799-68c97d7c7b6b" + unsplashSuffix,
	},
	"sunflower": {
		"https://images.unsplash.com/photo-1551731409-43eb3e517a1a" + unsplashSuffix,
		"https://images.unsplash.com/photo-1598751528584-cc23a0872c53" + unsplashSuffix,
		"https://images.unsplash.com/photo-1470509037663-253afd7f0f51" + unsplashSuffix,
	},
	"daisy": {
		"https://images.unsplash.com/photo-1568236179845-e1bd7e58e96e" + unsplashSuffix,
		"https://images.unsplash.com/photo-1594897030264-ab7d87efc473" + unsplashSuffix,
		"https://images.unsplash.com/photo-1508610048659-a06b669e3321" + unsplashSuffix,
	},
	"orchid": {
		"https://images.unsplash.com/photo-1585664812212-f0a5e7a5fb86" + unsplashSuffix,
		"https://images.unsplash.com/photo-1567696911980-2c669aad8fd9" + unsplashSuffix,
		"https://images.unsplash.com/photo-1610397648930-477b8c7f0943" + unsplashSuffix,
	},
	"peony": {
		"https://images.unsplash.com/photo-1558652093-9391c98f6a79" + unsplashSuffix,
		"https://images.unsplash.com/photo-1560882741-5c3e028f6265" + unsplashSuffix,
		"https://images.unsplash.com/photo-1578241561880-0a1d5db3cb8a" + unsplashSuffix,
	},
	"lavender": {
		"https://images.unsplash.com/photo-1499346030926-9a72daac6c63" + unsplashSuffix,
		"https://images.unsplash.com/photo-1532925547908-a2769e0b9c45" + unsplashSuffix,
		"https://images.unsplash.com/photo-1595236108826-d802f3951d51" + unsplashSuffix,
	},
}

func flowerGallery(kind string) []string {
	src := flowerImages[kind]
	images := make([]string, len(src))
	copy(images, src)
	return images
}

// FallbackProducts is the bundled catalog served when the remote sheet is
// unavailable.
func FallbackProducts() []Product {
	return []Product{
		{ID: 1, Name: "Hoa Hồng Đỏ", Price: 130000, OriginalPrice: 600000, Discount: 80, Image: flowerImages["rose"][0], Images: flowerGallery("rose"), Category: "promo", IsNew: true, Stock: 15},
		{ID: 2, Name: "Hoa Tulip Hà Lan", Price: 80000, OriginalPrice: 450000, Discount: 85, Image: flowerImages["tulip"][0], Images: flowerGallery("tulip"), Category: "promo", Stock: 20},
		{ID: 3, Name: "Hoa Lily Trắng", Price: 150000, OriginalPrice: 550000, Discount: 75, Image: flowerImages["lily"][0], Images: flowerGallery("lily"), Category: "promo", IsBestseller: true, Stock: 8},
		{ID: 4, Name: "Hoa Hướng Dương", Price: 100000, OriginalPrice: 500000, Discount: 80, Image: flowerImages["sunflower"][0], Images: flowerGallery("sunflower"), Category: "promo", Stock: 25},
		{ID: 5, Name: "Hoa Cúc Trắng", Price: 30000, OriginalPrice: 600000, Discount: 95, Image: flowerImages["daisy"][0], Images: flowerGallery("daisy"), Category: "big-discount", Stock: 5},
		{ID: 6, Name: "Hoa Lan Hồ Điệp", Price: 60000, OriginalPrice: 500000, Discount: 88, Image: flowerImages["orchid"][0], Images: flowerGallery("orchid"), Category: "big-discount", IsNew: true, Stock: 12},
		{ID: 7, Name: "Hoa Mẫu Đơn", Price: 80000, OriginalPrice: 400000, Discount: 80, Image: flowerImages["peony"][0], Images: flowerGallery("peony"), Category: "big-discount", Stock: 18},
		{ID: 8, Name: "Hoa Oải Hương", Price: 50000, OriginalPrice: 450000, Discount: 89, Image: flowerImages["lavender"][0], Images: flowerGallery("lavender"), Category: "big-discount", IsBestseller: true, Stock: 3},
		{ID: 9, Name: "Bó Hồng Nhung", Price: 150000, OriginalPrice: 600000, Discount: 75, Image: flowerImages["rose"][1], Images: flowerGallery("rose"), Category: "flash-sale", Stock: 10},
		{ID: 10, Name: "Tulip Nhiều Màu", Price: 220000, OriginalPrice: 400000, Discount: 45, Image: flowerImages["tulip"][1], Images: flowerGallery("tulip"), Category: "flash-sale", IsNew: true, Stock: 7},
		{ID: 11, Name: "Lily Vàng", Price: 180000, OriginalPrice: 550000, Discount: 67, Image: flowerImages["lily"][1], Images: flowerGallery("lily"), Category: "flash-sale", Stock: 14},
		{ID: 12, Name: "Hướng Dương Mini", Price: 120000, OriginalPrice: 480000, Discount: 75, Image: flowerImages["sunflower"][1], Images: flowerGallery("sunflower"), Category: "flash-sale", IsBestseller: true, Stock: 6},
		{ID: 13, Name: "Bó Hồng Sang Trọng", Price: 450000, Image: flowerImages["rose"][2], Images: flowerGallery("rose"), Category: "recommendation", IsBestseller: true, Stock: 20},
		{ID: 14, Name: "Bộ Sưu Tập Tulip", Price: 380000, Image: flowerImages["tulip"][2], Images: flowerGallery("tulip"), Category: "recommendation", IsNew: true, Stock: 15},
		{ID: 15, Name: "Hoa Lily Cắm Lọ", Price: 520000, Image: flowerImages["lily"][2], Images: flowerGallery("lily"), Category: "recommendation", Stock: 12},
		{ID: 16, Name: "Hoa Hỗn Hợp", Price: 350000, Image: flowerImages["peony"][2], Images: flowerGallery("peony"), Category: "recommendation", Stock: 25},
	}
}

func FallbackCategories() []Category {
	return []Category{
		{ID: "all", Label: "Tất cả sản phẩm", DisplayOrder: 0},
		{ID: "promo", Label: "Khuyến mãi", DisplayOrder: 1},
		{ID: "big-discount", Label: "Giảm giá lớn", DisplayOrder: 2},
		{ID: "flash-sale", Label: "Flash Sale", DisplayOrder: 3},
		{ID: "recommendation", Label: "Gợi ý cho bạn", DisplayOrder: 4},
	}
}

func FallbackTestimonials() []Testimonial {
	return []Testimonial{
		{ID: 1, Name: "Nguyễn Thị Hương", Rating: 5, Text: "Hoa gửi đến trông y hệt như hình trên website! Tôi rất hài lòng với dịch vụ và sẽ sử dụng lại!"},
		{ID: 2, Name: "Trần Văn Minh", Rating: 5, Text: "Luôn dễ dàng, luôn đẹp. Hoa đến đúng giờ và còn đẹp hơn ngoài đời thực!"},
		{ID: 3, Name: "Lê Thị Mai", Rating: 5, Text: "Bó hoa tuyệt vời và bố cục đẹp! Vượt xa mong đợi của tôi. Rất khuyến khích mọi người."},
	}
}

func FallbackFeatures() []Feature {
	return []Feature{
		{ID: 1, Icon: "/images/flower-feature-1.png", Title: "Hoa tươi mỗi ngày", Description: "Chúng tôi chỉ sử dụng hoa tươi được nhập về hàng ngày."},
		{ID: 2, Icon: "/images/flower-feature-2.png", Title: "Giao hàng nhanh", Description: "Giao hàng trong ngày cho các đơn hàng nội thành."},
		{ID: 3, Icon: "/images/flower-feature-3.png", Title: "Giá cả hợp lý", Description: "Chất lượng cao với giá cả phải chăng cho mọi người."},
	}
}

func FallbackSiteContent() SiteContent {
	return SiteContent{
		"header": {
			"bannerText": "MIỄN PHÍ VẬN CHUYỂN CHO ĐƠN HÀNG TỪ 500.000đ",
		},
		"hero": {
			"title":    "Làm mới không gian với cây xanh và những bó hoa tinh tế",
			"subtitle": "Tạo khu vườn trong nhà hoàn hảo với các loại cây cảnh, cây nở hoa, cây treo và nhiều hơn nữa!",
			"ctaText":  "Mua ngay",
		},
		"features": {
			"title": "Hoa và cây cảnh là chuyên môn của chúng tôi. Chúng tôi mang đến giá cả hợp lý.",
		},
		"bestsellers": {
			"title":   "Sản phẩm bán chạy",
			"ctaText": "Mua ngay",
		},
		"reviews": {
			"title": "Khách hàng nói gì về chúng tôi",
		},
		"discount": {
			"title":   "Đặt hàng ngay và nhận giảm 15% phí giao hàng",
			"ctaText": "Mua ngay",
		},
		"contact": {
			"title":   "Liên hệ với chúng tôi nếu bạn có bất kỳ câu hỏi nào",
			"ctaText": "Liên hệ",
		},
		"app": {
			"title":        "Chúng tôi luôn bên bạn",
			"description":  "Tải ứng dụng của chúng tôi để đặt hoa nhanh chóng và nhận nhiều ưu đãi độc quyền. Theo dõi đơn hàng dễ dàng và nhận thông báo về các khuyến mãi mới nhất.",
			"platformText": "Có sẵn trên iOS và Android",
			"ctaText":      "Tải ứng dụng",
		},
		"instagram": {
			"title":  "Theo dõi chúng tôi trên Instagram",
			"handle": "@flowerlab17",
			"url":    "https://instagram.com/flowerlab17",
		},
		"shop": {
			"heroTitle":    "CHÀO MỪNG ĐẾN NATNAT FLOWER SHOP",
			"heroSubtitle": "Khám phá bộ sưu tập hoa tươi đẹp cho mọi dịp",
			"ctaText":      "Mua ngay",
		},
		"newsletter": {
			"title":       "Đăng ký nhận ưu đãi đặc biệt",
			"subtitle":    "Nhận giảm giá độc quyền và là người đầu tiên biết về sản phẩm mới!",
			"placeholder": "Nhập email của bạn",
			"ctaText":     "Đăng ký",
		},
		"footer": {
			"privacyText": "Chính sách bảo mật",
			"termsText":   "Điều khoản sử dụng",
			"copyright":   "© 2026 Bản quyền thuộc NatNat Flower Shop",
		},
		"howItWorks": {
			"title":              "Từ những bó hoa thủ công đến các bố cục hoa tươi tốt",
			"subtitle":           "Chúng tôi cung cấp dịch vụ hoa tươi chất lượng cao với quy trình đặt hàng đơn giản và giao hàng nhanh chóng.",
			"sectionTitle":       "Cách hoạt động",
			"sectionSubtitle":    "Đơn giản & Nhanh chóng",
			"sectionDescription": "Chỉ với 3 bước đơn giản, bạn sẽ nhận được bó hoa tươi đẹp ngay tại cửa nhà.",
		},
		"about": {
			"link1Text": "Xem cam kết của chúng tôi",
			"link2Text": "Xem cam kết của chúng tôi",
		},
	}
}

func FallbackSiteConfig() SiteConfig {
	return SiteConfig{
		FreeShippingThreshold: 500000,
		FlashSaleDuration:     6,
		DiscountPercentage:    15,
		InstagramHandle:       "@flowerlab17",
		InstagramURL:          "https://instagram.com/flowerlab17",
		CompanyName:           "NatNat Flower Shop",
		Currency:              "VND",
	}
}

func FallbackBestsellers() []BestsellerProduct {
	return []BestsellerProduct{
		{ID: 1, Image: "/images/product-1.png", Name: "Hoa Hồng Đỏ", Price: 139000, DisplayOrder: 1},
		{ID: 2, Image: "/images/product-2.png", Name: "Hoa Tulip", Price: 82000, DisplayOrder: 2},
		{ID: 3, Image: "/images/product-3.png", Name: "Bó Biển Vàng", Price: 144000, DisplayOrder: 3},
		{ID: 4, Image: "/images/product-4.png", Name: "Hoa Hồng Cam", Price: 67000, DisplayOrder: 4},
	}
}

func FallbackInstagram() []InstagramPost {
	posts := make([]InstagramPost, 0, 6)
	for i := 1; i <= 6; i++ {
		posts = append(posts, InstagramPost{
			ID:           i,
			ImageURL:     fmt.Sprintf("/images/instagram-%d.png", i),
			AltText:      fmt.Sprintf("Instagram %d", i),
			DisplayOrder: i,
		})
	}
	return posts
}

func FallbackAbout() []AboutSection {
	return []AboutSection{
		{
			ID:           1,
			Title:        "Chúng tôi là ai",
			Content:      "NatNat Flower Shop là cửa hàng hoa tươi uy tín hàng đầu tại Việt Nam. Chúng tôi cam kết mang đến những bó hoa tươi đẹp nhất, được chọn lọc kỹ lưỡng từ những nhà vườn uy tín. Mỗi sản phẩm đều được tạo ra với tình yêu và sự tận tâm.",
			Image:        "/images/about-1.png",
			LinkText:     "Xem cam kết của chúng tôi",
			DisplayOrder: 1,
		},
		{
			ID:           2,
			Title:        "Chúng tôi làm gì",
			Content:      "Chúng tôi chuyên cung cấp các dịch vụ hoa tươi cho mọi dịp: sinh nhật, cưới hỏi, khai trương, chia buồn, và các dịp đặc biệt khác. Đội ngũ florist chuyên nghiệp sẽ giúp bạn tạo nên những bó hoa ấn tượng nhất.",
			Image:        "/images/about-2.png",
			LinkText:     "Xem cam kết của chúng tôi",
			DisplayOrder: 2,
		},
	}
}

func FallbackHowItWorks() []HowItWorksStep {
	return []HowItWorksStep{
		{StepNumber: 1, Emoji: "❉", Title: "Bước 1: Chọn hoa yêu thích"},
		{StepNumber: 2, Emoji: "❉", Title: "Bước 2: Đặt hàng online"},
		{StepNumber: 3, Emoji: "❉", Title: "Bước 3: Nhận hoa tại nhà"},
	}
}

// FallbackAll assembles the composite default payload.
func FallbackAll() AllData {
	return AllData{
		Products:     FallbackProducts(),
		Categories:   FallbackCategories(),
		Testimonials: FallbackTestimonials(),
		Features:     FallbackFeatures(),
		SiteContent:  FallbackSiteContent(),
		SiteConfig:   FallbackSiteConfig(),
		Bestsellers:  FallbackBestsellers(),
		Instagram:    FallbackInstagram(),
		About:        FallbackAbout(),
		HowItWorks:   FallbackHowItWorks(),
	}
}
