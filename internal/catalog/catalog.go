// Package catalog holds the static condition table the classifier output
// indices map onto: bilingual labels, patient-facing explanations, weekly
// care plans and video suggestions.
package catalog

// Weekdays is the fixed plan order. Every weekly plan has exactly one task
// per entry, in this order.
var Weekdays = [7]string{"Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi", "Pazar"}

type PlanItem struct {
	Day  string `json:"day"`
	Task string `json:"task"`
}

type Entry struct {
	ID      int
	LabelTR string
	LabelEN string

	Explanation string
	Risk        string
	Advice      string

	WeeklyTasks [7]string
	VideoURL    string
}

// GenericVideoURL is suggested when no finding survives filtering.
const GenericVideoURL = "https://www.youtube.com/results?search_query=genel+di%C5%9F+bak%C4%B1m%C4%B1"

var entries = []Entry{
	{
		ID:          0,
		LabelTR:     "Diş Taşı (Calculus)",
		LabelEN:     "Calculus",
		Explanation: "Diş taşları, diş yüzeyinde biriken sertleşmiş plaklardır. Diş eti hastalıklarına yol açabilir ve düzenli temizlik gerektirir.",
		Risk:        "Diş eti çekilmesi ve enfeksiyon.",
		Advice:      "Diş hekiminizde profesyonel temizlik yaptırın ve günlük ağız hijyenine özen gösterin.",
		WeeklyTasks: [7]string{
			"Diş hekiminizden profesyonel temizlik randevusu alın.",
			"Diş aralarını diş ipi veya ara yüz fırçasıyla temizleyin.",
			"Elektrikli diş fırçası ile 2 dakika fırçalayın.",
			"Antibakteriyel ağız gargarası kullanın.",
			"Şekerli ve yapışkan gıdalardan uzak durun.",
			"Parmakla diş eti masajı yaparak kan dolaşımını artırın.",
			"Diş fırçanızı kontrol edin, gerekirse yenileyin.",
		},
		VideoURL: "https://www.youtube.com/results?search_query=di%C5%9F+ta%C5%9F%C4%B1+nasil+temizlenir",
	},
	{
		ID:          1,
		LabelTR:     "Diş Çürüğü (Karies)",
		LabelEN:     "Caries",
		Explanation: "Diş çürüğü, diş minesinde asitler nedeniyle oluşan oyuklardır. Erken müdahale edilmezse ağrı ve enfeksiyona yol açabilir.",
		Risk:        "Çürüklerin ilerlemesi ve diş kaybı.",
		Advice:      "Şekerli gıdalardan kaçının, florürlü diş macunu kullanın ve diş hekiminize başvurun.",
		WeeklyTasks: [7]string{
			"Florürlü diş macunu ile sabah ve akşam 2 dakika fırçalayın.",
			"Diş ipi ile diş aralarını temizleyin.",
			"Şekerli içecek ve yiyecek tüketimini azaltın.",
			"Bol su içerek ağız içini temiz tutun.",
			"Diş hekiminizden çürük kontrolü için randevu alın.",
			"Sebze ve meyve gibi sağlıklı atıştırmalıklar tüketin.",
			"Ağız gargarası ile bakımınızı destekleyin.",
		},
		VideoURL: "https://www.youtube.com/results?search_query=di%C5%9F+%C3%A7%C3%BCr%C3%BC%C4%9F%C3%BC+%C3%B6nleme",
	},
	{
		ID:          2,
		LabelTR:     "Diş Eti İltihabı (Gingivitis)",
		LabelEN:     "Gingivitis",
		Explanation: "Diş eti iltihabı, diş etlerinde kızarıklık, şişlik ve kanamaya neden olur. Uygun bakım ile iyileşme mümkündür.",
		Risk:        "Diş eti çekilmesi ve periodontitis.",
		Advice:      "Yumuşak bir fırça ile nazikçe fırçalayın ve diş ipi kullanın.",
		WeeklyTasks: [7]string{
			"Yumuşak kıllı fırça ile diş etlerinizi nazikçe fırçalayın.",
			"Diş ipi ile nazikçe diş aralarını temizleyin.",
			"Antibakteriyel ağız gargarası kullanın.",
			"C vitamini açısından zengin gıdalar (portakal, kivi) tüketin.",
			"Diş hekiminizden diş taşı temizliği randevusu alın.",
			"Diş eti masajı ile kan dolaşımını destekleyin.",
			"Diş eti kanaması devam ederse hekime başvurun.",
		},
		VideoURL: "https://www.youtube.com/results?search_query=di%C5%9F+eti+iltihab%C4%B1+bak%C4%B1m%C4%B1",
	},
	{
		ID:          3,
		LabelTR:     "Aft (Ağız Yarası)",
		LabelEN:     "Mouth Ulcer",
		Explanation: "Aft, ağız içinde oluşan ağrılı yaralardır. Genellikle stres, vitamin eksikliği veya travmadan kaynaklanır.",
		Risk:        "Konfor kaybı ve hassasiyet.",
		Advice:      "Tuzlu suyla gargara yapın ve tahriş edici yiyeceklerden kaçının.",
		WeeklyTasks: [7]string{
			"Tuzlu suyla günde 2 kez gargara yapın.",
			"Asitli ve baharatlı yiyeceklerden kaçının.",
			"Yumuşak kıllı fırça ile nazikçe fırçalayın.",
			"Soğuk ve yumuşak yiyecekler (yoğurt, smoothie) tüketin.",
			"B12 ve C vitamini takviyesi almayı düşünün.",
			"Stresi azaltmak için rahatlama teknikleri uygulayın.",
			"Aft 1 haftadan uzun sürerse hekime başvurun.",
		},
		VideoURL: "https://www.youtube.com/results?search_query=aft+nedir+tedavisi",
	},
	{
		ID:          4,
		LabelTR:     "Diş Renklenmesi",
		LabelEN:     "Tooth Discoloration",
		Explanation: "Diş renklenmesi, çay, kahve, sigara veya yapısal nedenlerden kaynaklanabilir. Estetik bir sorundur.",
		Risk:        "Estetik kaygı ve özgüven kaybı.",
		Advice:      "Beyazlatıcı diş macunu kullanın ve profesyonel temizlik için diş hekiminize danışın.",
		WeeklyTasks: [7]string{
			"Çay, kahve ve sigara tüketimini azaltın.",
			"Beyazlatıcı diş macunu ile 2 dakika fırçalayın.",
			"Diş hekiminizden profesyonel temizlik randevusu alın.",
			"Bol su içerek ağız içini temiz tutun.",
			"Renklenmeye neden olan gıdalardan uzak durun.",
			"Diş ipi ile diş aralarını temizleyin.",
			"Beyazlatma seçenekleri için hekiminize danışın.",
		},
		VideoURL: "https://www.youtube.com/results?search_query=di%C5%9F+renklenmesi+nas%C4%B1l+ge%C3%A7er",
	},
	{
		ID:          5,
		LabelTR:     "Hipodonti (Eksik Diş)",
		LabelEN:     "Hypodontia",
		Explanation: "Hipodonti, doğuştan bir veya daha fazla dişin eksik olmasıdır. Fonksiyonel ve estetik sorunlara yol açabilir.",
		Risk:        "Çiğneme ve konuşma zorlukları.",
		Advice:      "Ortodontik veya protetik tedavi için diş hekiminize başvurun.",
		WeeklyTasks: [7]string{
			"Ortodontik muayene için diş hekiminden randevu alın.",
			"Eksik dişlerin yerine tedavi seçeneklerini araştırın.",
			"Yumuşak kıllı fırça ile dişlerinizi fırçalayın.",
			"Ağız hijyenine ekstra özen gösterin.",
			"Diş hekiminizle tedavi planınızı görüşün.",
			"Sağlıklı beslenmeye dikkat edin, kalsiyum alın.",
			"Düzenli diş kontrolü için plan yapın.",
		},
		VideoURL: "https://www.youtube.com/results?search_query=hipodonti+nedir+tedavisi",
	},
}

var genericTasks = [7]string{
	"Sabah ve akşam 2 dakika diş fırçalayın.",
	"Diş ipi ile diş aralarını temizleyin.",
	"Antibakteriyel ağız gargarası kullanın.",
	"Bol su içerek ağız hijyenini destekleyin.",
	"Diş hekiminizden kontrol randevusu alın.",
	"Sebze ve meyve gibi sağlıklı atıştırmalıklar tüketin.",
	"Diş fırçanızı kontrol edin ve gerekirse yenileyin.",
}

// Size is the number of classes the classifier must emit.
func Size() int { return len(entries) }

func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// ByID returns the entry for a classifier output index.
func ByID(id int) (Entry, bool) {
	if id < 0 || id >= len(entries) {
		return Entry{}, false
	}
	return entries[id], true
}

// ByLabelTR resolves an entry by its Turkish label.
func ByLabelTR(label string) (Entry, bool) {
	for _, e := range entries {
		if e.LabelTR == label {
			return e, true
		}
	}
	return Entry{}, false
}

// WeeklyPlan returns the 7-item plan for the given TR label, or the generic
// maintenance plan when the label is empty or unknown.
func WeeklyPlan(labelTR string) []PlanItem {
	tasks := genericTasks
	if e, ok := ByLabelTR(labelTR); ok {
		tasks = e.WeeklyTasks
	}
	plan := make([]PlanItem, len(Weekdays))
	for i, day := range Weekdays {
		plan[i] = PlanItem{Day: day, Task: tasks[i]}
	}
	return plan
}

// VideoFor returns the care-video link for the given TR label, or the
// generic care video when the label is empty or unknown.
func VideoFor(labelTR string) string {
	if e, ok := ByLabelTR(labelTR); ok {
		return e.VideoURL
	}
	return GenericVideoURL
}
