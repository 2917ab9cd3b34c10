package llm

import "google.golang.org/genai"

// Structured-output schemas for the Gemini calls. Field names match the JSON
// tags on the exam types, so responses decode without a translation layer.

func packageSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"meta": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"subject":       {Type: genai.TypeString, Description: "Mata pelajaran yang diminta."},
					"grade":         {Type: genai.TypeString, Description: "Tingkat kelas yang diminta."},
					"topic":         {Type: genai.TypeString, Description: "Topik atau materi yang diminta."},
					"questionType":  {Type: genai.TypeString, Description: "Jenis soal yang diminta."},
					"questionCount": {Type: genai.TypeInteger, Description: "Jumlah soal yang diminta."},
				},
			},
			"kisiKisi": {
				Type:        genai.TypeArray,
				Description: "Array objek yang merepresentasikan kisi-kisi soal.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"nomor":           {Type: genai.TypeInteger},
						"kompetensiDasar": {Type: genai.TypeString, Description: "Kompetensi dasar yang relevan dengan kurikulum di Indonesia."},
						"indikator":       {Type: genai.TypeString, Description: "Indikator pencapaian kompetensi."},
						"levelKognitif":   {Type: genai.TypeString, Description: "Level kognitif (C1-C6) berdasarkan Taksonomi Bloom."},
						"bentukSoal":      {Type: genai.TypeString, Description: "Bentuk soal (Pilihan Ganda, Uraian, dll)."},
					},
					Required: []string{"nomor", "kompetensiDasar", "indikator", "levelKognitif", "bentukSoal"},
				},
			},
			"soal": {
				Type:        genai.TypeArray,
				Description: "Array objek yang berisi butir-butir soal.",
				Items:       questionSchema(),
			},
			"kunciJawaban": {
				Type:        genai.TypeArray,
				Description: "Array objek yang berisi kunci jawaban.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"nomor":   {Type: genai.TypeInteger},
						"jawaban": {Type: genai.TypeString, Description: "Kunci jawaban. Untuk Pilihan Ganda, formatnya 'A. Teks jawaban'. Untuk Uraian, berikan rubrik penilaian singkat."},
					},
					Required: []string{"nomor", "jawaban"},
				},
			},
			"analisisButirSoal": {
				Type:        genai.TypeArray,
				Description: "Array objek berisi analisis teoritis butir soal.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"nomor":               {Type: genai.TypeInteger},
						"tingkatKesukaran":    {Type: genai.TypeString, Description: "Deskripsi tingkat kesukaran (e.g., 'Sedang (0.30-0.70)')."},
						"dayaPembeda":         {Type: genai.TypeString, Description: "Deskripsi daya pembeda (e.g., 'Baik (0.40-0.70)')."},
						"efektivitasPengecoh": {Type: genai.TypeString, Description: "Deskripsi efektivitas pengecoh (e.g., 'Efektif'). Tulis 'Tidak Berlaku' untuk soal non-pilihan ganda."},
						"validitas":           {Type: genai.TypeString, Description: "Deskripsi validitas (e.g., 'Valid')."},
					},
					Required: []string{"nomor", "tingkatKesukaran", "dayaPembeda", "efektivitasPengecoh", "validitas"},
				},
			},
		},
		Required: []string{"meta", "kisiKisi", "soal", "kunciJawaban", "analisisButirSoal"},
	}
}

func questionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"nomor":            {Type: genai.TypeInteger},
			"tingkatKesukaran": {Type: genai.TypeString, Enum: []string{"Mudah", "Sedang", "Sukar"}},
			"tipeSoal":         {Type: genai.TypeString, Enum: []string{"Pilihan Ganda", "Isian Singkat", "Uraian"}},
			"pertanyaan":       {Type: genai.TypeString, Description: "Teks lengkap pertanyaan soal. Gunakan format LaTeX untuk persamaan matematika (contoh: '$\\frac{1}{2}$')."},
			"deskripsiGambar":  {Type: genai.TypeString, Description: "Deskripsi rinci dari gambar yang diperlukan untuk soal ini. Jika tidak ada gambar, kosongkan."},
			"pilihan": {
				Type:        genai.TypeArray,
				Description: "Array berisi 5 string untuk pilihan jawaban (A-E), hanya untuk tipe Pilihan Ganda.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"nomor", "tingkatKesukaran", "tipeSoal", "pertanyaan"},
	}
}
