package recommend

// database covers every disease the bundled model predicts. Keys must match
// the model labels byte for byte, including the odd spellings the training
// data carries ("Osteoarthristis", "Peptic ulcer diseae", the double space in
// the vertigo label).
var database = map[string]Entry{
	"Fungal infection": {
		Medicines:        []string{"Clotrimazole cream (OTC)", "Fluconazole (Prescription)"},
		HomeRemedies:     []string{"Keep area dry and clean", "Apply tea tree oil"},
		DietaryAdvice:    []string{"Eat probiotic-rich foods", "Reduce sugar intake"},
		LifestyleChanges: []string{"Wear breathable cotton clothes", "Avoid sharing towels"},
		Specialist:       "Dermatologist",
	},
	"Allergy": {
		Medicines:        []string{"Cetirizine (OTC)", "Loratadine (OTC)"},
		HomeRemedies:     []string{"Steam inhalation", "Saline nasal rinse"},
		DietaryAdvice:    []string{"Identify trigger foods", "Increase vitamin C"},
		LifestyleChanges: []string{"Use air purifiers", "Keep windows closed during pollen season"},
		Specialist:       "Allergist",
	},
	"GERD": {
		Medicines:        []string{"Omeprazole (OTC)", "Ranitidine (OTC)"},
		HomeRemedies:     []string{"Ginger tea", "Elevate head while sleeping"},
		DietaryAdvice:    []string{"Avoid spicy foods", "Eat smaller meals"},
		LifestyleChanges: []string{"Don't eat before bed", "Lose weight if overweight"},
		Specialist:       "Gastroenterologist",
	},
	"Diabetes": {
		Medicines:        []string{"Metformin (Prescription)", "Insulin (Prescription)"},
		HomeRemedies:     []string{"Bitter gourd juice", "Fenugreek seeds"},
		DietaryAdvice:    []string{"Low glycemic foods", "Control carbs"},
		LifestyleChanges: []string{"Exercise 30 min daily", "Monitor blood sugar"},
		Specialist:       "Endocrinologist",
	},
	"Gastroenteritis": {
		Medicines:        []string{"ORS (OTC)", "Loperamide (OTC)"},
		HomeRemedies:     []string{"BRAT diet", "Ginger tea"},
		DietaryAdvice:    []string{"Avoid dairy", "Small sips of water"},
		LifestyleChanges: []string{"Wash hands frequently", "Rest"},
		Specialist:       "Gastroenterologist",
	},
	"Bronchial Asthma": {
		Medicines:        []string{"Salbutamol inhaler (Prescription)", "Budesonide (Prescription)"},
		HomeRemedies:     []string{"Steam inhalation", "Breathing exercises"},
		DietaryAdvice:    []string{"Anti-inflammatory foods", "Omega-3 rich foods"},
		LifestyleChanges: []string{"Avoid triggers", "Use air purifiers"},
		Specialist:       "Pulmonologist",
	},
	"Hypertension": {
		Medicines:        []string{"Amlodipine (Prescription)", "Losartan (Prescription)"},
		HomeRemedies:     []string{"Garlic supplements", "Deep breathing"},
		DietaryAdvice:    []string{"DASH diet", "Reduce sodium"},
		LifestyleChanges: []string{"Exercise daily", "Reduce stress"},
		Specialist:       "Cardiologist",
	},
	"Migraine": {
		Medicines:        []string{"Sumatriptan (Prescription)", "Ibuprofen (OTC)"},
		HomeRemedies:     []string{"Cold compress", "Rest in dark room"},
		DietaryAdvice:    []string{"Avoid trigger foods", "Stay hydrated"},
		LifestyleChanges: []string{"Regular sleep schedule", "Manage stress"},
		Specialist:       "Neurologist",
	},
	"Cervical spondylosis": {
		Medicines:        []string{"Ibuprofen (OTC)", "Muscle relaxants (Prescription)"},
		HomeRemedies:     []string{"Neck exercises", "Hot/cold compress"},
		DietaryAdvice:    []string{"Anti-inflammatory foods", "Calcium-rich foods"},
		LifestyleChanges: []string{"Ergonomic workspace", "Regular stretching"},
		Specialist:       "Orthopedic",
	},
	"Jaundice": {
		Medicines:        []string{"Depends on cause (Prescription)"},
		HomeRemedies:     []string{"Sugarcane juice", "Lemon water"},
		DietaryAdvice:    []string{"Light meals", "Avoid fatty food"},
		LifestyleChanges: []string{"Complete bed rest", "Avoid alcohol"},
		Specialist:       "Hepatologist",
	},
	"Malaria": {
		Medicines:        []string{"Chloroquine (Prescription)", "ACT (Prescription)"},
		HomeRemedies:     []string{"Stay hydrated", "Rest"},
		DietaryAdvice:    []string{"High-calorie food", "Fresh fruits"},
		LifestyleChanges: []string{"Use mosquito nets", "Eliminate standing water"},
		Specialist:       "Infectious Disease Specialist",
	},
	"Chicken pox": {
		Medicines:        []string{"Acyclovir (Prescription)", "Calamine lotion (OTC)"},
		HomeRemedies:     []string{"Oatmeal baths", "Neem leaf bath"},
		DietaryAdvice:    []string{"Soft bland foods", "Stay hydrated"},
		LifestyleChanges: []string{"Isolate to prevent spread", "Keep nails short"},
		Specialist:       "Dermatologist",
	},
	"Dengue": {
		Medicines:        []string{"Paracetamol only (OTC)", "IV fluids if severe (Hospital)"},
		HomeRemedies:     []string{"Papaya leaf extract", "Stay hydrated"},
		DietaryAdvice:    []string{"Coconut water", "Protein-rich diet"},
		LifestyleChanges: []string{"Mosquito prevention", "Monitor platelet count"},
		Specialist:       "Infectious Disease Specialist",
	},
	"Typhoid": {
		Medicines:        []string{"Azithromycin (Prescription)", "Ciprofloxacin (Prescription)"},
		HomeRemedies:     []string{"Cold compress for fever", "Stay hydrated"},
		DietaryAdvice:    []string{"High-calorie food", "Boiled water only"},
		LifestyleChanges: []string{"Complete rest", "Hand hygiene"},
		Specialist:       "Infectious Disease Specialist",
	},
	"Hepatitis B": {
		Medicines:        []string{"Tenofovir (Prescription)", "Entecavir (Prescription)"},
		HomeRemedies:     []string{"Milk thistle", "Rest"},
		DietaryAdvice:    []string{"Avoid alcohol", "Low-fat diet"},
		LifestyleChanges: []string{"Regular liver monitoring", "Safe sex"},
		Specialist:       "Hepatologist",
	},
	"Hepatitis C": {
		Medicines:        []string{"Sofosbuvir + Ledipasvir (Prescription)"},
		HomeRemedies:     []string{"Milk thistle", "Rest"},
		DietaryAdvice:    []string{"No alcohol", "High-fiber diet"},
		LifestyleChanges: []string{"Regular blood tests", "No alcohol"},
		Specialist:       "Hepatologist",
	},
	"Hepatitis D": {
		Medicines:        []string{"Pegylated Interferon (Prescription)"},
		HomeRemedies:     []string{"Rest", "Hydration"},
		DietaryAdvice:    []string{"Avoid alcohol", "Balanced nutrition"},
		LifestyleChanges: []string{"Hepatitis B vaccination", "Regular monitoring"},
		Specialist:       "Hepatologist",
	},
	"Hepatitis E": {
		Medicines:        []string{"Supportive care -- self-limiting"},
		HomeRemedies:     []string{"Rest", "Stay hydrated"},
		DietaryAdvice:    []string{"Purified water only", "Low-fat diet"},
		LifestyleChanges: []string{"Good sanitation", "Hand hygiene"},
		Specialist:       "Gastroenterologist",
	},
	"hepatitis A": {
		Medicines:        []string{"Supportive care -- self-limiting"},
		HomeRemedies:     []string{"Rest", "Hydration"},
		DietaryAdvice:    []string{"Avoid fatty foods", "Stay hydrated"},
		LifestyleChanges: []string{"Vaccination", "Good hygiene"},
		Specialist:       "Gastroenterologist",
	},
	"Alcoholic hepatitis": {
		Medicines:        []string{"Prednisolone (Prescription)"},
		HomeRemedies:     []string{"Absolute alcohol abstinence"},
		DietaryAdvice:    []string{"High-protein diet", "Vitamin supplements"},
		LifestyleChanges: []string{"Complete alcohol cessation", "Join support groups"},
		Specialist:       "Hepatologist",
	},
	"Tuberculosis": {
		Medicines:        []string{"RIPE regimen (Prescription -- 6-9 months)"},
		HomeRemedies:     []string{"Adequate nutrition", "Sunlight"},
		DietaryAdvice:    []string{"High-calorie, high-protein diet", "Fresh fruits"},
		LifestyleChanges: []string{"Complete medication course", "Cover mouth when coughing"},
		Specialist:       "Pulmonologist",
	},
	"Common Cold": {
		Medicines:        []string{"Paracetamol (OTC)", "Decongestant (OTC)"},
		HomeRemedies:     []string{"Salt water gargle", "Steam inhalation", "Honey ginger tea"},
		DietaryAdvice:    []string{"Chicken soup", "Citrus fruits"},
		LifestyleChanges: []string{"Rest", "Wash hands frequently"},
		Specialist:       "General Physician",
	},
	"Pneumonia": {
		Medicines:        []string{"Amoxicillin (Prescription)", "Azithromycin (Prescription)"},
		HomeRemedies:     []string{"Steam inhalation", "Warm fluids"},
		DietaryAdvice:    []string{"High-protein diet", "Warm soups"},
		LifestyleChanges: []string{"Complete rest", "Deep breathing exercises"},
		Specialist:       "Pulmonologist",
	},
	"Heart attack": {
		Medicines:        []string{"Aspirin (emergency OTC)", "Nitroglycerin (Prescription)"},
		HomeRemedies:     []string{"CALL EMERGENCY IMMEDIATELY", "Chew aspirin if not allergic"},
		DietaryAdvice:    []string{"Low-fat, low-sodium diet", "Mediterranean diet"},
		LifestyleChanges: []string{"Cardiac rehabilitation", "Quit smoking"},
		Specialist:       "Cardiologist",
	},
	"Varicose veins": {
		Medicines:        []string{"Diosmin (OTC)", "Compression stockings (OTC)"},
		HomeRemedies:     []string{"Elevate legs", "Cold water therapy"},
		DietaryAdvice:    []string{"High-fiber foods", "Reduce sodium"},
		LifestyleChanges: []string{"Avoid prolonged standing", "Regular walking"},
		Specialist:       "Vascular Surgeon",
	},
	"Hypothyroidism": {
		Medicines:        []string{"Levothyroxine (Prescription)"},
		HomeRemedies:     []string{"Regular exercise", "Stress management"},
		DietaryAdvice:    []string{"Iodine-rich foods", "Selenium-rich foods"},
		LifestyleChanges: []string{"Take medication on empty stomach", "Regular thyroid tests"},
		Specialist:       "Endocrinologist",
	},
	"Hyperthyroidism": {
		Medicines:        []string{"Methimazole (Prescription)", "Propranolol (Prescription)"},
		HomeRemedies:     []string{"Cool compresses", "Stress reduction"},
		DietaryAdvice:    []string{"High-calorie diet", "Limit iodine"},
		LifestyleChanges: []string{"Regular thyroid monitoring", "Avoid caffeine"},
		Specialist:       "Endocrinologist",
	},
	"Hypoglycemia": {
		Medicines:        []string{"Glucose tablets (OTC)", "Glucagon kit (Prescription)"},
		HomeRemedies:     []string{"Eat fast-acting carbs", "Follow with protein"},
		DietaryAdvice:    []string{"Regular meals", "Complex carbs with protein"},
		LifestyleChanges: []string{"Carry glucose tablets", "Monitor blood sugar"},
		Specialist:       "Endocrinologist",
	},
	"Osteoarthristis": {
		Medicines:        []string{"Acetaminophen (OTC)", "Glucosamine (OTC)"},
		HomeRemedies:     []string{"Hot/cold packs", "Gentle stretching"},
		DietaryAdvice:    []string{"Anti-inflammatory foods", "Omega-3 fish oil"},
		LifestyleChanges: []string{"Low-impact exercise", "Maintain healthy weight"},
		Specialist:       "Rheumatologist",
	},
	"Arthritis": {
		Medicines:        []string{"NSAIDs (OTC)", "Methotrexate (Prescription)"},
		HomeRemedies:     []string{"Warm compresses", "Turmeric milk"},
		DietaryAdvice:    []string{"Anti-inflammatory diet", "Omega-3 fatty acids"},
		LifestyleChanges: []string{"Regular gentle exercise", "Joint protection"},
		Specialist:       "Rheumatologist",
	},
	"(vertigo) Paroymsal  Positional Vertigo": {
		Medicines:        []string{"Meclizine (OTC)", "Betahistine (Prescription)"},
		HomeRemedies:     []string{"Epley maneuver", "Stay hydrated"},
		DietaryAdvice:    []string{"Low-sodium diet", "Avoid caffeine"},
		LifestyleChanges: []string{"Move slowly", "Avoid sudden head movements"},
		Specialist:       "ENT / Neurologist",
	},
	"Acne": {
		Medicines:        []string{"Benzoyl peroxide (OTC)", "Tretinoin (Prescription)"},
		HomeRemedies:     []string{"Tea tree oil", "Aloe vera gel"},
		DietaryAdvice:    []string{"Reduce dairy and sugar", "Increase water intake"},
		LifestyleChanges: []string{"Don't touch face", "Change pillowcases regularly"},
		Specialist:       "Dermatologist",
	},
	"Urinary tract infection": {
		Medicines:        []string{"Nitrofurantoin (Prescription)", "Phenazopyridine (OTC)"},
		HomeRemedies:     []string{"Cranberry juice", "Drink lots of water"},
		DietaryAdvice:    []string{"8-10 glasses of water", "Probiotic foods"},
		LifestyleChanges: []string{"Urinate after intercourse", "Wipe front to back"},
		Specialist:       "Urologist",
	},
	"Psoriasis": {
		Medicines:        []string{"Topical corticosteroids (Prescription)", "Calcipotriene (Prescription)"},
		HomeRemedies:     []string{"Aloe vera gel", "Oatmeal baths"},
		DietaryAdvice:    []string{"Anti-inflammatory diet", "Omega-3 rich foods"},
		LifestyleChanges: []string{"Moisturize daily", "Manage stress"},
		Specialist:       "Dermatologist",
	},
	"Impetigo": {
		Medicines:        []string{"Mupirocin ointment (Prescription)", "Cephalexin (Prescription)"},
		HomeRemedies:     []string{"Wash sores gently", "Don't scratch"},
		DietaryAdvice:    []string{"Immune-boosting foods", "Vitamin C"},
		LifestyleChanges: []string{"Keep sores covered", "Don't share towels"},
		Specialist:       "Dermatologist",
	},
	"Dimorphic hemmorhoids(piles)": {
		Medicines:        []string{"Stool softeners (OTC)", "Hydrocortisone cream (OTC)"},
		HomeRemedies:     []string{"Sitz bath", "Witch hazel pads"},
		DietaryAdvice:    []string{"High-fiber diet", "8-10 glasses of water"},
		LifestyleChanges: []string{"Don't strain", "Regular exercise"},
		Specialist:       "Proctologist",
	},
	"Paralysis (brain hemorrhage)": {
		Medicines:        []string{"Blood pressure management (Prescription)"},
		HomeRemedies:     []string{"Physiotherapy", "Speech therapy"},
		DietaryAdvice:    []string{"Low-sodium diet", "Brain-healthy foods"},
		LifestyleChanges: []string{"Rehabilitation therapy", "Regular medical follow-up"},
		Specialist:       "Neurologist",
	},
	"AIDS": {
		Medicines:        []string{"Antiretroviral therapy / ART (Prescription)"},
		HomeRemedies:     []string{"Maintain hygiene", "Adequate rest"},
		DietaryAdvice:    []string{"High-protein diet", "Stay hydrated"},
		LifestyleChanges: []string{"Regular check-ups", "Practice safe sex"},
		Specialist:       "Infectious Disease Specialist",
	},
	"Drug Reaction": {
		Medicines:        []string{"Diphenhydramine (OTC)", "Epinephrine for severe (Prescription)"},
		HomeRemedies:     []string{"Cool compresses", "Oatmeal baths"},
		DietaryAdvice:    []string{"Stay hydrated", "Eat bland foods"},
		LifestyleChanges: []string{"Stop suspected medication", "Wear medical alert bracelet"},
		Specialist:       "Allergist",
	},
	"Peptic ulcer diseae": {
		Medicines:        []string{"Omeprazole (OTC)", "Sucralfate (Prescription)"},
		HomeRemedies:     []string{"Cabbage juice", "Probiotics"},
		DietaryAdvice:    []string{"Avoid spicy foods", "Small frequent meals"},
		LifestyleChanges: []string{"Quit smoking", "Manage stress"},
		Specialist:       "Gastroenterologist",
	},
	"Chronic cholestasis": {
		Medicines:        []string{"Ursodeoxycholic acid (Prescription)"},
		HomeRemedies:     []string{"Oatmeal baths for itching", "Cool compresses"},
		DietaryAdvice:    []string{"Low-fat diet", "Increase fiber"},
		LifestyleChanges: []string{"Avoid alcohol", "Regular liver tests"},
		Specialist:       "Hepatologist",
	},
}
