package mirror

import "github.com/google/uuid"

// Seed bawaan per koleksi, dipakai kalau slot side-store belum ada.
// ID di-hardcode supaya seed konsisten antar proses yang start bersamaan.

func seedLeadership() []LeadershipMember {
	return []LeadershipMember{
		{
			ID:        uuid.MustParse("5c1e2a1a-9d53-4c8e-bb1e-0f2d6a3c9101"),
			Name:      "H. Ahmad Fauzi",
			Position:  "Ketua DKM",
			Education: "S2 Manajemen Dakwah",
			ImageURL:  "",
		},
		{
			ID:        uuid.MustParse("5c1e2a1a-9d53-4c8e-bb1e-0f2d6a3c9102"),
			Name:      "Ust. Ridwan Hakim",
			Position:  "Imam Besar",
			Education: "S1 Ilmu Al-Qur'an dan Tafsir",
			ImageURL:  "",
		},
	}
}

func seedFacilities() []Facility {
	return []Facility{
		{
			ID:          uuid.MustParse("6d2f3b2b-0e64-4d9f-8c2f-1a3e7b4d0201"),
			Name:        "Ruang Sholat Utama",
			Description: "Kapasitas 1.200 jamaah, ber-AC, karpet tebal.",
			ImageURL:    "",
		},
		{
			ID:          uuid.MustParse("6d2f3b2b-0e64-4d9f-8c2f-1a3e7b4d0202"),
			Name:        "Perpustakaan",
			Description: "Koleksi buku agama dan umum, terbuka untuk jamaah.",
			ImageURL:    "",
		},
	}
}

func seedActivities() []Activity {
	return []Activity{
		{
			ID:          uuid.MustParse("7e3a4c3c-1f75-4ea0-9d3a-2b4f8c5e0301"),
			Date:        "2026-09-04",
			Name:        "Kajian Jumat Pagi",
			Description: "Kajian rutin ba'da Subuh bersama ustadz tamu.",
			Category:    "kajian",
		},
	}
}

func seedPhotos() []Photo { return []Photo{} }

func seedVideos() []Video { return []Video{} }

func seedMessages() []ContactMessage { return []ContactMessage{} }
