package llm

import (
	"fmt"
	"strings"

	"github.com/liyas/soalgen/internal/exam"
)

func languageInstruction(lang string) string {
	switch lang {
	case "Bahasa Indonesia":
		return "Gunakan Bahasa Indonesia secara eksklusif untuk seluruh konten (soal, pilihan, kunci jawaban, dll)."
	case "Bahasa Inggris":
		return "Use English exclusively for all content (questions, options, answer keys, etc.)."
	case "Bahasa Sunda":
		return "Gunakan Basa Sunda sacara éksklusif pikeun sadaya eusi (soal, pilihan, konci jawaban, jsb.)."
	case "Bahasa Arab":
		return "استخدم اللغة العربية حصريًا لجميع المحتويات (الأسئلة، الخيارات، مفاتيح الإجابات، إلخ)."
	default:
		return "Gunakan Bahasa Indonesia untuk seluruh konten."
	}
}

var paiSubjects = []string{"Pendidikan Agama", "Al-Qur’an Hadis", "Akidah Akhlak", "Fikih", "SKI"}

// Religious-studies subjects must quote scripture in the original Arabic with
// an Indonesian translation.
func paiInstruction(subject string) string {
	for _, s := range paiSubjects {
		if strings.Contains(subject, s) {
			return "Sangat Penting: Untuk mata pelajaran ini, sertakan kutipan ayat Al-Qur'an atau Hadits yang relevan dalam tulisan Arab Utsmani asli, diikuti dengan terjemahannya dalam Bahasa Indonesia."
		}
	}
	return ""
}

func buildPackagePrompt(req GenerateRequest) string {
	desc := req.Description
	if desc == "" {
		desc = "Tidak ada"
	}
	return fmt.Sprintf(`
Anda adalah seorang ahli penyusun soal profesional (assessment specialist) untuk kurikulum pendidikan di Indonesia.
Tugas Anda adalah membuat satu paket soal lengkap berdasarkan permintaan berikut:

**PERMINTAAN PENGGUNA:**
- Mata Pelajaran: %s
- Kelas: %s
- Topik/Materi: %s
- Jenis Soal: %s
- Jumlah Soal: %d
- Deskripsi Tambahan: %s

**ATURAN GENERASI KONTEN (WAJIB DIIKUTI):**

1.  **Bahasa:**
    %s

2.  **Konten Khusus Mata Pelajaran:**
    %s

3.  **Soal Matematika/Sains:**
    - Untuk semua persamaan matematika, fisika, atau kimia, **WAJIB** gunakan format LaTeX.
    - Contoh Inline: 'Hitung nilai dari $\sqrt{16}$ !'
    - Contoh Blok: 'Selesaikan persamaan berikut: $$\int_0^\infty e^{-x^2} dx = \frac{\sqrt{\pi}}{2}$$'

4.  **Soal Berbasis Gambar:**
    - Jika sebuah soal memerlukan gambar (diagram, grafik, peta, ilustrasi), JANGAN buat gambarnya.
    - Sebagai gantinya, berikan deskripsi yang SANGAT DETAIL dan jelas tentang gambar tersebut di field `+"`deskripsiGambar`"+`.

5.  **Struktur Paket:**
    a.  **Kisi-Kisi Soal**: Sesuai format, termasuk Kompetensi Dasar, Indikator, Level Kognitif, dan Bentuk Soal.
    b.  **Butir Soal**: Teks pertanyaan yang jelas dan tidak ambigu.
    c.  **Kunci Jawaban**: Jawaban yang benar. Untuk soal uraian, berikan rubrik penilaian atau poin-poin kunci jawaban.
    d.  **Analisis Butir Soal (Teoritis)**: Prediksi kualitas setiap butir soal.

Pastikan sebaran tingkat kesukaran soal (Mudah, Sedang, Sulit) proporsional. Untuk Pilihan Ganda, sediakan 5 pilihan jawaban (A, B, C, D, E).
Pastikan seluruh output dalam format JSON yang valid sesuai dengan skema yang diberikan.
`,
		req.Subject, req.Grade, req.Topic, req.QuestionType, req.QuestionCount, desc,
		languageInstruction(req.Language), paiInstruction(req.Subject))
}

func buildRegeneratePrompt(original exam.QuestionItem, meta exam.Meta) string {
	return fmt.Sprintf(`
Anda adalah seorang ahli penyusun soal (assessment specialist).
Tugas Anda adalah membuat ulang (regenerate) satu butir soal berdasarkan soal asli dan konteksnya.
Soal baru harus berbeda dari soal asli, namun tetap menguji indikator dan tingkat kesulitan yang sama.

**Konteks Paket Soal:**
- Mata Pelajaran: %s
- Kelas: %s
- Topik/Materi: %s

**Soal Asli (Nomor %d):**
- Tingkat Kesukaran: %s
- Tipe Soal: %s
- Pertanyaan: %s

**Instruksi:**
1.  Buat satu soal baru yang berbeda, bisa dengan skenario, angka, atau pendekatan yang berbeda.
2.  Pertahankan tingkat kesukaran, tipe soal, dan nomor soal yang sama.
3.  Pastikan soal baru relevan dengan mata pelajaran, kelas, dan topik yang diberikan.
4.  Gunakan format LaTeX untuk matematika jika diperlukan.
5.  Jika soal asli memerlukan gambar, buat deskripsi gambar yang relevan untuk soal baru.
6.  Hasilkan output dalam format JSON yang valid sesuai skema yang diberikan.
`,
		meta.Subject, meta.Grade, meta.Topic,
		original.Number, original.Difficulty, original.QuestionType, original.PromptText)
}

func buildExplainPrompt(q exam.QuestionItem, key exam.AnswerKeyItem, meta exam.Meta) string {
	options := ""
	if len(q.Options) > 0 {
		options = fmt.Sprintf("- Pilihan:\n%s\n", strings.Join(q.Options, "\n"))
	}
	return fmt.Sprintf(`
Anda adalah seorang guru ahli dan komunikator yang hebat.
Tugas Anda adalah memberikan penjelasan yang jelas, ringkas, dan mudah dipahami untuk sebuah soal, seolah-olah Anda sedang menjelaskannya kepada siswa kelas %s.

**Konteks:**
- Mata Pelajaran: %s
- Topik/Materi: %s

**Soal (Nomor %d):**
- Pertanyaan: %s
%s
**Kunci Jawaban:**
- %s

**Instruksi:**
1.  Mulai dengan menyatakan kembali jawaban yang benar.
2.  Berikan penjelasan langkah-demi-langkah atau pemaparan konsep yang logis mengapa jawaban tersebut benar.
3.  Gunakan bahasa yang sesuai untuk siswa kelas %s. Hindari jargon yang terlalu teknis.
4.  Jika ini soal Pilihan Ganda, jelaskan secara singkat mengapa pilihan lain salah (jika relevan).
5.  Akhiri dengan kesimpulan atau poin kunci yang bisa diingat siswa.
6.  Jangan gunakan format JSON. Hasilkan jawaban hanya dalam bentuk teks biasa (plain text).
`,
		meta.Grade, meta.Subject, meta.Topic,
		q.Number, q.PromptText, options, key.AnswerText, meta.Grade)
}
