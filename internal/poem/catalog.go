package poem

// Line-count slider bounds.
const (
	MinLines = 4
	MaxLines = 40
	LineStep = 2
)

// Catalog values are offered by the form. The prompt builder accepts any
// string, so these are suggestions rather than an allow-list.
var (
	Types = []string{
		"Thơ Tự Do",
		"Lục Bát",
		"Song Thất Lục Bát",
		"Thơ Bốn Chữ",
		"Thơ Năm Chữ",
		"Thơ Bảy Chữ",
		"Thơ Tám Chữ",
		"Thất Ngôn Tứ Tuyệt",
		"Thất Ngôn Bát Cú Đường Luật",
		"Thơ Văn Xuôi",
		"Haiku",
		"Sonnet",
	}

	Styles = []string{
		"Lãng mạn",
		"Trữ tình",
		"Hiện thực",
		"Cổ điển",
		"Hiện đại",
		"Siêu thực",
		"Tượng trưng",
		"Hài hước",
		"Trào phúng",
		"Triết lý",
		"Dân gian",
	}

	Contexts = []string{
		"Tình yêu đôi lứa",
		"Quê hương đất nước",
		"Thiên nhiên",
		"Gia đình",
		"Tình bạn",
		"Tuổi thơ",
		"Tuổi học trò",
		"Cuộc sống đời thường",
		"Thành phố",
		"Mùa và thời tiết",
		"Chiến tranh và hòa bình",
		"Triết lý nhân sinh",
		"Tâm linh",
	}

	Emotions = []string{
		"Vui tươi",
		"Buồn bã",
		"Nhớ nhung",
		"Hy vọng",
		"Cô đơn",
		"Hoài niệm",
		"Bình yên",
		"Say đắm",
		"Tự hào",
		"Biết ơn",
		"Giận dữ",
		"Lo âu",
		"Ngưỡng mộ",
		"Tiếc nuối",
	}

	Audiences = []string{
		"Trẻ em",
		"Thanh thiếu niên",
		"Người lớn",
		"Người cao tuổi",
		"Mọi lứa tuổi",
	}

	SuggestedTopics = []string{
		"Bình minh trên biển",
		"Hoàng hôn trên sông Hồng",
		"Mùa thu Hà Nội",
		"Mưa phùn tháng Giêng",
		"Phố cổ Hội An về đêm",
		"Cánh đồng lúa chín",
		"Tiếng ve mùa hạ",
		"Hoa phượng sân trường",
		"Bữa cơm gia đình",
		"Mẹ và chiếc áo bà ba",
		"Người cha lặng lẽ",
		"Ngày đầu đi học",
		"Tết sum vầy",
		"Chuyến tàu đêm",
		"Ly cà phê buổi sáng",
		"Thành phố không ngủ",
		"Người lính biên cương",
		"Đêm trăng rằm",
		"Cơn mưa bất chợt",
		"Lá vàng rơi",
		"Mối tình đầu",
		"Chia tay",
		"Ngôi nhà cũ",
		"Biển và nỗi nhớ",
		"Núi rừng Tây Bắc",
		"Dòng Mê Kông",
		"Chợ nổi miền Tây",
		"Gánh hàng rong",
		"Ước mơ bay cao",
		"Thời gian trôi",
	}
)
