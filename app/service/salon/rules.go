package salon

// Salon facts shared by several branches of the engine.
const (
	BookingURL = "eleganceparis.fr/rdv"
	SalonPhone = "01 42 XX XX XX"

	bookingCTA = "\n\nPour confirmer définitivement votre créneau :\n📱 Réservez en ligne : eleganceparis.fr/rdv\n📞 Ou appelez-nous : 01 42 XX XX XX\n\nOn a hâte de vous accueillir ! 😊"
)

// isClosedDay is the single source of truth for the salon's closed days,
// used both by the appointment branch and the day-only fallback.
func isClosedDay(day string) bool {
	return day == "dimanche" || day == "lundi"
}

// Rule maps trigger keywords to one or more canned replies. Keywords are
// matched as substrings of the folded message, so they must themselves be
// in folded form (lowercase, no accents). MustNotHave entries veto a
// match. Rules are evaluated top to bottom and the first hit wins; the
// order of this table is load-bearing.
type Rule struct {
	Keywords    []string
	MustNotHave []string
	Responses   []string
}

// sentinelAppointment reserves the top-priority slot for the appointment
// extraction branch, which runs before the table scan.
const sentinelAppointment = "__SPECIAL_APPOINTMENT__"

var rules = []Rule{
	// Concrete booking request (day + time, possibly a stylist). Handled
	// before the scan so it outranks the opening-hours rule.
	{
		Keywords:  []string{sentinelAppointment},
		Responses: []string{""},
	},

	// Greetings
	{
		Keywords: []string{"bonjour", "salut", "hello", "bonsoir", "coucou", "hey", "hi ", "yo ", "slt"},
		Responses: []string{
			"Bonjour et bienvenue chez Élégance Paris ! ✨ Comment puis-je vous aider ?",
			"Bonjour ! Ravie de vous accueillir chez Élégance Paris. Que puis-je faire pour vous ? ✨",
			"Hey, bienvenue chez Élégance Paris ! En quoi puis-je vous aider aujourd'hui ? 😊",
		},
	},

	// Cuts, general quality questions
	{
		Keywords: []string{"belle coupe", "bonne coupe", "bien couper", "coupe bien", "bon coiffeur", "bonne coiffeuse", "coupe tendance", "coupe moderne", "coupe style", "joli coupe", "jolie coupe", "coiffure tendance"},
		Responses: []string{
			"Absolument ! Nos coiffeurs sont spécialisés dans les coupes tendance et personnalisées ✂️ Sarah, Karim, Julie et Marco sauront trouver la coupe parfaite pour vous. Chaque coupe commence par un diagnostic de vos cheveux et de vos envies. Vous souhaitez prendre rendez-vous ?",
			"Bien sûr ! Chez Élégance Paris, chaque coupe est pensée sur-mesure pour vous ✂️ Nos coiffeurs prennent le temps d'écouter vos envies et de vous conseiller la coupe idéale. On vous réserve un créneau ?",
		},
	},

	// Women's cut
	{
		Keywords:  []string{"coupe femme", "coupe pour femme", "couper les cheveux femme", "coupe dame"},
		Responses: []string{"La coupe femme est à 45€ chez nous ✂️ Si vous souhaitez aussi un brushing, le combo Coupe + Brushing est à 65€. Nos coiffeurs prendront le temps de bien comprendre ce que vous voulez. Souhaitez-vous réserver ?"},
	},

	// Men's cut
	{
		Keywords:  []string{"coupe homme", "coupe pour homme", "coupe mec", "coupe gars", "coupe masculine"},
		Responses: []string{"La coupe homme est à 25€ 💈 Et si vous voulez la barbe en plus, c'est 35€ le combo ! Karim est notre expert coupe homme, il maîtrise tous les styles : dégradé, fade, classique... Vous voulez qu'on vous réserve un créneau avec lui ?"},
	},

	// Generic cut question, only when no more specific variant applies
	{
		Keywords:    []string{"coupe", "couper", "coupes", "coupez", "coiffer", "coiffure", "coiffez", "coiffe"},
		MustNotHave: []string{"femme", "homme", "enfant", "barbe", "prix", "tarif", "combien"},
		Responses: []string{
			"Nous proposons des coupes pour tous ! ✂️\n\n💇‍♀️ Coupe femme : 45€\n💇‍♂️ Coupe homme : 25€\n👧 Coupe enfant : 18€\n💇‍♀️ Coupe + Brushing : 65€\n\nChaque coupe est personnalisée selon vos envies et la nature de vos cheveux. Pour quel type de coupe seriez-vous intéressé(e) ?",
			"On adore ce qu'on fait ! ✂️ Nos coiffeurs sont passionnés et à la pointe des tendances. Voici nos formules :\n\n- Coupe femme : 45€\n- Coupe homme : 25€\n- Coupe enfant : 18€\n- Coupe + Brushing : 65€\n\nVous souhaitez réserver ?",
		},
	},

	// Fades
	{
		Keywords:  []string{"degrade", "fade", "taper", "undercut", "fondu"},
		Responses: []string{"Le dégradé c'est la spécialité de Karim ! 💈 Il maîtrise tous les styles : low fade, mid fade, high fade, taper... La coupe homme est à 25€. Vous pouvez ajouter la barbe pour 15€ de plus. On vous réserve un créneau avec lui ?"},
	},

	// Pricing
	{
		Keywords:  []string{"tarif", "prix", "combien", "cout", "coute", "cher", "pas cher", "budget", "grille", "carte des prix"},
		Responses: []string{"Voici nos tarifs chez Élégance Paris :\n\n✂️ Coupe femme : 45€\n💈 Coupe homme : 25€\n💇‍♀️ Coupe + Brushing : 65€\n🎨 Coloration : 80€\n✨ Balayage : à partir de 90€\n💆 Lissage brésilien : 150€\n👧 Coupe enfant : 18€\n🧔 Barbe : 15€\n💆‍♀️ Soin profond : 25€\n\nUne prestation vous intéresse en particulier ?"},
	},

	// Opening hours (booking requests with a concrete slot never reach this)
	{
		Keywords: []string{"horaire", "ouvert", "ouvre", "ferme", "heure", "semaine", "week-end", "weekend"},
		Responses: []string{
			"Nous sommes ouverts du mardi au samedi, de 9h à 19h 🕐 Le dimanche et le lundi, le salon est fermé. Souhaitez-vous prendre rendez-vous ?",
			"Nos horaires :\n\n📅 Mardi → Samedi : 9h - 19h\n🚫 Dimanche & Lundi : Fermé\n\nOn vous attend quand ? 😊",
		},
	},

	// Booking
	{
		Keywords:  []string{"rdv", "rendez-vous", "rendez vous", "reserver", "reservation", "dispo", "disponible", "disponibilite", "creneau", "place", "venir", "passer"},
		Responses: []string{"Super ! Pour réserver votre créneau :\n\n📱 En ligne : eleganceparis.fr/rdv (rapide et simple)\n📞 Par téléphone : 01 42 XX XX XX\n\nNous sommes ouverts du mardi au samedi, 9h-19h. Avez-vous une préférence pour un coiffeur en particulier ? 😊"},
	},

	// Color
	{
		Keywords: []string{"coloration", "couleur", "teinte", "teinture", "meche", "balayage", "blond", "brun", "roux", "rouge", "reflet", "ombre", "tie and dye", "tie & dye"},
		Responses: []string{
			"La couleur c'est l'expertise de Sarah, notre responsable ! 🎨\n\n- Coloration complète : 80€\n- Mèches / Balayage : à partir de 90€\n\nElle prend le temps de diagnostiquer vos cheveux et de choisir la nuance parfaite pour vous. Le résultat est toujours naturel et lumineux. On vous réserve un RDV avec elle ?",
			"Vous voulez changer de couleur ? Excellente idée ! 🎨 Sarah est notre experte, elle fait des merveilles :\n\n- Coloration complète : 80€\n- Balayage / Mèches : à partir de 90€\n\nElle vous conseillera la teinte idéale selon votre carnation et vos envies. Intéressé(e) ?",
		},
	},

	// Smoothing
	{
		Keywords:  []string{"lissage", "lisser", "keratine", "bresilien", "defriser", "lisse", "raide"},
		Responses: []string{"Le lissage brésilien est la spécialité de Julie ! 💆‍♀️\n\n- Lissage brésilien à la kératine : 150€\n- Durée : environ 2h30\n- Tient 3-4 mois\n- Résultat : cheveux lisses, brillants et nourris\n\nC'est un soin qui respecte la fibre capillaire. Julie vous expliquera tout en détail lors du RDV. On réserve ?"},
	},

	// Hair care
	{
		Keywords:  []string{"soin", "traitement", "abime", "sec ", "secs", "fourche", "cassant", "hydrat", "nourri", "reparer"},
		Responses: []string{"Nous avons un soin profond à 25€ qui fait des merveilles ! 💆‍♀️ Julie est notre spécialiste soins capillaires. Le soin nourrit en profondeur, répare les pointes abîmées et redonne de la brillance à vos cheveux. Parfait en complément d'une coupe ou d'une coloration. Ça vous tente ?"},
	},

	// Blow-dry
	{
		Keywords:  []string{"brushing", "brush", "mise en forme", "mise en pli", "secher"},
		Responses: []string{"Le brushing est à 30€ en solo, ou 65€ avec la coupe (Coupe + Brushing) 💇‍♀️ Nos coiffeurs maîtrisent tous les styles : brushing lisse, wavy, volume... Qu'est-ce qui vous ferait plaisir ?"},
	},

	// Beard
	{
		Keywords:  []string{"barbe", "raser", "rasage", "bouc", "moustache", "taille de barbe", "tailler"},
		Responses: []string{"Karim est notre expert barbe ! 🧔\n\n- Taille de barbe : 15€\n- Coupe homme + Barbe : 35€\n\nIl maîtrise toutes les techniques : dégradé barbe, barbe sculptée, rasage net... Vous voulez un créneau avec lui ?"},
	},

	// Kids
	{
		Keywords:  []string{"enfant", "gamin", "petit", "petite", "fille", "fils", "bebe", "ado", "adolescent", "junior", "garcon", "fillette"},
		Responses: []string{"Bien sûr, on accueille les enfants avec plaisir ! 👧👦\n\nCoupe enfant (moins de 12 ans) : 18€\n\nNos coiffeurs sont super patients et mettent les petits à l'aise. On a même des magazines et des dessins animés pour les occuper pendant la coupe ! Vous souhaitez réserver ?"},
	},

	// Address and access
	{
		Keywords:  []string{"adresse", "ou etes", "ou est", "situe", "localisation", "trouver", "venir", "acces", "metro", "transport", "garer", "parking"},
		Responses: []string{"Nous sommes au 42 rue du Faubourg Saint-Honoré, Paris 8e 📍\n\n🚇 Métro : Madeleine (lignes 8, 12, 14) ou Concorde (lignes 1, 8, 12)\n🅿️ Parking le plus proche : Parking Madeleine\n\nLe salon est facilement accessible en transports en commun. À bientôt ! 😊"},
	},

	// Team
	{
		Keywords:  []string{"equipe", "coiffeur", "coiffeuse", "staff", "qui coiffe", "sarah", "karim", "julie", "marco", "meilleur coiffeur", "recommand", "conseil"},
		Responses: []string{"Notre équipe est composée de 4 coiffeurs passionnés :\n\n👩‍🎨 Sarah (responsable) — Experte couleur et balayage\n💈 Karim — Spécialiste coupe homme et barbe\n💆 Julie — Spécialiste lissage et soins\n✂️ Marco — Coiffeur polyvalent, tous styles\n\nChacun a sa spécialité, mais tous sont excellents ! Vous avez une préférence ?"},
	},

	// Reviews
	{
		Keywords: []string{"avis", "bien", "bon salon", "recommande", "qualite", "confiance", "professionnel", "resultat", "satisfait", "content", "top", "genial"},
		Responses: []string{
			"Merci pour votre confiance ! ✨ Nos clients sont notre meilleure pub. On a une note de 4.8/5 avec plus de 200 avis Google. Notre secret : on prend le temps d'écouter chaque client et de personnaliser chaque prestation. Venez nous tester, vous ne serez pas déçu(e) !",
			"Chez Élégance Paris, on met un point d'honneur sur la qualité ✨ Plus de 200 avis clients avec une note de 4.8/5. On prend vraiment le temps avec chaque personne. Le bouche-à-oreille est notre meilleure publicité ! Passez nous voir 😊",
		},
	},

	// Weddings and events
	{
		Keywords:  []string{"mariage", "mariee", "soiree", "evenement", "gala", "fete", "chignon", "ceremonie"},
		Responses: []string{"Félicitations ! 🎉 Nous proposons des coiffures événementielles (mariage, soirée, gala...). Pour ce type de prestation, on vous conseille de prendre rendez-vous directement par téléphone au 01 42 XX XX XX pour discuter de vos envies et faire un essai coiffure en amont. Sarah et Marco sont excellents pour les coiffures de cérémonie !"},
	},

	// Products
	{
		Keywords:  []string{"produit", "shampoing", "shampooing", "apres-shampoing", "apres shampoing", "gamme", "marque", "kerastase", "olaplex", "acheter"},
		Responses: []string{"Nous utilisons et vendons des produits professionnels haut de gamme au salon 💅 Nos coiffeurs pourront vous conseiller les produits adaptés à votre type de cheveux. N'hésitez pas à demander conseil lors de votre prochain passage !"},
	},

	// Hair types
	{
		Keywords: []string{"boucle", "frise", "afro", "crepu", "naturel", "curly", "ondule", "epais", "fin ", "fins", "plat"},
		Responses: []string{
			"Chez Élégance Paris, on adore travailler tous les types de cheveux ! 💇‍♀️ Que vous ayez les cheveux bouclés, frisés, raides ou fins, nos coiffeurs sauront sublimer votre texture naturelle. Marco et Sarah sont particulièrement à l'aise avec les cheveux texturés. On vous réserve un créneau ?",
			"Quelle que soit votre texture de cheveux, on s'adapte ! ✂️ Nos coiffeurs sont formés pour travailler tous les types de cheveux. On prend le temps de comprendre vos cheveux pour vous proposer la meilleure coupe et les meilleurs soins. Vous souhaitez prendre RDV ?",
		},
	},

	// Duration
	{
		Keywords:  []string{"dure combien", "combien de temps", "duree", "temps", "rapide", "vite", "long", "attendre", "attente"},
		Responses: []string{"Voici les durées approximatives de nos prestations :\n\n✂️ Coupe : 30-45 min\n💇‍♀️ Coupe + Brushing : 1h\n🎨 Coloration : 1h30-2h\n✨ Balayage : 2h-2h30\n💆 Lissage brésilien : 2h30-3h\n🧔 Barbe : 20 min\n\nOn prend le temps qu'il faut pour un résultat parfait 😊"},
	},

	// Payment
	{
		Keywords:  []string{"payer", "paiement", "carte", "espece", "cb", "cheque", "cash", "liquide", "apple pay", "sans contact"},
		Responses: []string{"Nous acceptons tous les moyens de paiement 💳\n\n- Carte bancaire (sans contact)\n- Espèces\n- Apple Pay / Google Pay\n\nPas de chèques en revanche. Simple et pratique !"},
	},

	// Cancellation
	{
		Keywords:  []string{"annuler", "annulation", "reporter", "decaler", "changer", "modifier", "deplacer"},
		Responses: []string{"Pas de souci, vous pouvez annuler ou modifier votre rendez-vous jusqu'à 24h avant. Il suffit de nous appeler au 01 42 XX XX XX ou de modifier directement sur eleganceparis.fr/rdv 📱 Au-delà, on vous demandera juste de nous prévenir le plus tôt possible !"},
	},

	// First visit
	{
		Keywords:  []string{"premiere fois", "premier rdv", "nouveau client", "nouvelle cliente", "jamais venu", "connais pas", "decouvrir", "essayer"},
		Responses: []string{"Bienvenue ! Pour une première visite, on prend toujours un petit temps en plus pour vous connaître ✨ On discute de vos envies, de vos habitudes, de la nature de vos cheveux... Comme ça, le résultat est vraiment personnalisé. Pas de stress, on est là pour vous conseiller ! Prêt(e) à réserver ?"},
	},

	// Thanks and goodbyes
	{
		Keywords: []string{"merci", "super", "parfait", "genial", "cool", "nickel", "excellent", "au revoir", "bye", "bonne journee", "a bientot"},
		Responses: []string{
			"Avec plaisir ! N'hésitez pas si vous avez d'autres questions. À très bientôt chez Élégance Paris ! ✨",
			"Merci à vous ! On a hâte de vous accueillir au salon. À bientôt ! 😊",
			"Tout le plaisir est pour moi ! À très vite chez Élégance Paris ✨",
		},
	},

	// Yes / confirmation without booking context
	{
		Keywords:  []string{"oui", "ouais", "d'accord", "d accord", "ok", "je veux", "volontiers", "ca m'interesse", "pourquoi pas", "allons-y", "go ", "lets go", "let's go", "c'est parti"},
		Responses: []string{"Parfait ! 🎉 Pour réserver votre créneau :\n\n📱 En ligne : eleganceparis.fr/rdv\n📞 Par téléphone : 01 42 XX XX XX\n\nOn a hâte de vous accueillir !"},
	},

	// No / hesitation
	{
		Keywords:  []string{"non", "pas pour le moment", "je reflechis", "je sais pas", "je ne sais pas", "peut-etre", "on verra", "plus tard", "pas sur"},
		Responses: []string{"Pas de problème, prenez votre temps ! 😊 On est là si vous avez d'autres questions. N'hésitez pas à revenir quand vous voulez, on sera ravis de vous accueillir."},
	},

	// Comfort while waiting
	{
		Keywords:  []string{"wifi", "wi-fi", "internet", "salle d'attente", "magazine", "cafe", "boisson"},
		Responses: []string{"On pense à votre confort ! ☕ Wi-Fi gratuit disponible au salon, café ou thé offert à votre arrivée. On a aussi des magazines si vous préférez déconnecter. Vous serez chouchouté(e) !"},
	},

	// Gift cards
	{
		Keywords:  []string{"cadeau", "bon cadeau", "carte cadeau", "offrir", "idee cadeau", "gift"},
		Responses: []string{"Excellente idée ! 🎁 Nous proposons des cartes cadeaux de n'importe quel montant. C'est le cadeau parfait pour faire plaisir ! Passez au salon ou appelez-nous au 01 42 XX XX XX pour en commander une."},
	},

	// Insults, stay calm and redirect
	{
		Keywords: []string{"nul", "naze", "merde", "putain", "con", "connard", "connasse", "fdp", "ntm", "ta gueule", "ferme la", "ferme-la", "degage", "casse toi", "casse-toi", "encule", "batard", "pute", "salaud", "salope", "idiot", "debile", "abruti", "cretin", "imbecile", "stupide", "moche", "arnaque", "arnaqueur", "voleur", "escroc"},
		Responses: []string{
			"Je comprends que quelque chose puisse vous frustrer, et j'en suis désolé 😊 Je suis là pour vous aider du mieux possible. Puis-je faire quelque chose pour vous ? Tarifs, réservation, informations sur le salon ?",
			"Aïe, on est parti du mauvais pied on dirait 😅 Pas de souci, je reste à votre disposition. Si vous avez une question sur le salon, je suis là pour ça !",
			"Ce n'est pas très gentil, mais je ne vous en veux pas ! 😊 Mon rôle c'est de vous aider. Vous avez besoin d'infos sur le salon ou de prendre rendez-vous ?",
		},
	},

	// Complaints
	{
		Keywords:  []string{"pas content", "pas satisfait", "plainte", "reclam", "rembours", "mauvais", "horrible", "catastrophe", "desastre", "rate", "abimer", "massacr"},
		Responses: []string{"Je suis vraiment désolé d'apprendre ça 😔 Votre satisfaction est notre priorité. Je vous invite à appeler directement le salon au 01 42 XX XX XX pour en discuter avec Sarah, notre responsable. Elle prendra le temps de comprendre la situation et de trouver une solution. On tient beaucoup à nos clients."},
	},

	// Jokes
	{
		Keywords: []string{"haha", "lol", "mdr", "ptdr", "drole", "blague", "marrant", "rigol", "😂", "🤣", "😆"},
		Responses: []string{
			"Haha, content(e) de vous faire sourire ! 😄 Plus sérieusement, est-ce que je peux vous aider avec quelque chose au salon ?",
			"😄 L'ambiance est déjà au top ! Au fait, je peux vous aider pour une coupe, une coloration, ou une réservation ?",
		},
	},

	// Questions about the bot itself
	{
		Keywords: []string{"t'es un robot", "t'es un bot", "es-tu un robot", "es tu un bot", "t'es une ia", "intelligence artificielle", "humain ou robot", "vrai personne", "parle a un humain", "parler a quelqu'un", "t'es qui", "tu es qui", "c'est qui", "comment tu t'appelle"},
		Responses: []string{
			"Je suis l'assistant virtuel d'Élégance Paris ! 🤖✨ Je suis là 24h/24 pour répondre à vos questions sur le salon. Si vous préférez parler à quelqu'un de l'équipe, n'hésitez pas à appeler au 01 42 XX XX XX !",
			"Bien vu ! Je suis un assistant IA, disponible jour et nuit pour vous renseigner sur le salon 😊 Mais si vous avez besoin de parler à un humain, appelez-nous au 01 42 XX XX XX, l'équipe sera ravie de vous répondre !",
		},
	},

	// Off-topic: weather, politics, sport...
	{
		Keywords: []string{"meteo", "temps qu'il fait", "il pleut", "il fait beau", "politique", "president", "election", "foot", "football", "match", "psg", "marseille", "film", "serie", "netflix", "musique", "chanson", "recette", "cuisine", "manger", "restaurant"},
		Responses: []string{
			"Haha, bonne question, mais je suis spécialisé dans la coiffure, pas la météo ! ☀️😄 Par contre, si vous voulez une coupe qui résiste à la pluie, on a ce qu'il faut. Vous avez besoin d'infos sur le salon ?",
			"Ah, ça sort un peu de mon domaine ! 😄 Moi je suis calé en coupes, colorations et lissages. Vous avez une question sur le salon ? Je suis tout ouïe !",
			"J'adorerais en discuter, mais je suis plutôt branché ciseaux et brushings ! ✂️😄 Qu'est-ce que je peux faire pour vous côté coiffure ?",
		},
	},

	// Flirting
	{
		Keywords: []string{"t'es belle", "t'es beau", "je t'aime", "tu me plais", "on sort ensemble", "ton numero", "date", "diner", "tu es charmant", "tu es mignon", "crush"},
		Responses: []string{
			"Oh, c'est gentil ! 😊 Mais je suis juste un assistant virtuel, je ne suis pas très doué en rendez-vous galants... Par contre, les rendez-vous coiffure, c'est mon truc ! Vous voulez réserver ? 💇",
			"Haha merci, vous êtes adorable ! 😄 Mais le seul rendez-vous que je peux vous proposer, c'est au salon ! Coupe, coloration, soin ? ✂️",
		},
	},

	// Probing whether the bot works
	{
		Keywords: []string{"test", "tu marche", "tu marches", "ca marche", "tu fonctionne", "tu fonctionnes", "t'es la", "allo", "tu repond", "tu m'entend"},
		Responses: []string{
			"Oui oui, je suis bien là ! 😊 Je fonctionne 24h/24 pour répondre à toutes vos questions sur Élégance Paris. Allez-y, posez-moi une question !",
			"Présent et opérationnel ! ✨ Posez-moi n'importe quelle question sur le salon : tarifs, horaires, coiffeurs, réservation... je gère !",
		},
	},

	// Hair emergencies
	{
		Keywords:  []string{"urgence", "urgent", "catastrophe capillaire", "rate ma couleur", "cheveux vert", "cheveux orange", "cheveux casse", "cheveux brule", "gros probleme", "au secours", "help", "sos", "disaster"},
		Responses: []string{"Oh non, je comprends le stress ! 😰 Le mieux c'est d'appeler directement le salon au 01 42 XX XX XX pour expliquer la situation. Nos coiffeurs sont habitués aux rattrapages et trouveront une solution. Sarah est experte en correction couleur. Appelez vite, on va arranger ça ! 💪"},
	},

	// Compliments about the salon
	{
		Keywords: []string{"j'adore", "j'aime bien", "vous etes genial", "trop bien", "incroyable", "magnifique", "bravo", "chapeau", "felicitation", "meilleur salon", "le meilleur"},
		Responses: []string{
			"Merci beaucoup, ça nous touche énormément ! 🥰 Toute l'équipe met tout son cœur dans son travail. On espère vous revoir très vite !",
			"Ça fait tellement plaisir à lire ! ✨ Merci pour ces mots, on transmettra à toute l'équipe. N'hésitez pas à nous laisser un avis Google, ça nous aide beaucoup ! 😊",
		},
	},

	// Vague requests for ideas
	{
		Keywords: []string{"je sais pas quoi faire", "quoi faire", "vous conseillez quoi", "que me conseillez", "qu'est-ce que vous proposez", "que proposez", "idee", "suggestion", "inspir", "changement", "changer de tete", "relooking", "je m'ennuie", "envie de changement"},
		Responses: []string{
			"Envie de changement ? J'adore ! ✨ Voici quelques idées :\n\n💇‍♀️ Une nouvelle coupe tendance\n🎨 Un balayage pour illuminer le visage\n💆 Un soin pour redonner vie à vos cheveux\n✨ Un lissage pour un look ultra lisse\n\nLe mieux, c'est de venir pour un diagnostic avec l'un de nos coiffeurs. Ils sauront vous conseiller selon votre visage et vos cheveux !",
			"Si vous hésitez, venez en consultation ! 😊 Nos coiffeurs adorent conseiller et trouver le look parfait. En ce moment, le balayage est très demandé, et le lissage brésilien fait des miracles. Envie de tester quelque chose ?",
		},
	},

	// Accessibility
	{
		Keywords: []string{"handicap", "fauteuil roulant", "fauteuil", "pmr", "accessib", "mobilite reduite", "bequille", "malvoyant", "aveugle", "sourd", "muet", "prothese", "invalidite", "mobilite", "rampe", "ascenseur", "difficulte a marcher", "probleme mobilite"},
		Responses: []string{
			"Votre confort est notre priorité ! ♿ Le salon Élégance Paris est accessible aux personnes à mobilité réduite : entrée de plain-pied, espace large entre les postes. N'hésitez pas à nous prévenir de vos besoins spécifiques lors de la réservation, on s'adapte ! 📞 01 42 XX XX XX",
			"Bien sûr, on accueille tout le monde chez Élégance Paris ! ♿ Notre salon est accessible (entrée sans marche, espace adapté). Si vous avez des besoins particuliers, prévenez-nous en réservant et on fera en sorte que tout soit parfait pour vous 😊 Appelez-nous au 01 42 XX XX XX !",
		},
	},

	// Short reactions
	{
		Keywords: []string{"ah", "oh", "hmm", "euh", "bof", "mouais", "ok", "d'acc", "mhm", "interessant", "waw", "wow", "wahou"},
		Responses: []string{
			"Vous hésitez ? 😊 Pas de souci ! Dites-moi ce qui vous ferait plaisir et je vous guide. Coupe, couleur, soin... on a de quoi vous chouchouter !",
			"Je suis là si vous avez des questions ! 😊 N'hésitez pas à me demander n'importe quoi sur le salon.",
		},
	},
}

// genericFallbacks close the resolution ladder when nothing else applies.
var genericFallbacks = []string{
	"Bonne question ! Je connais tout sur le salon Élégance Paris : nos coupes, colorations, soins, tarifs, horaires et notre équipe. 😊 Dites-moi ce qui vous intéresse et je vous renseigne !",
	"Je suis là pour tout vous dire sur Élégance Paris ! ✨ Que ce soit pour une coupe, une couleur, un soin ou juste pour connaître nos tarifs — demandez-moi, je gère !",
	"Excellente question ! Chez Élégance Paris, on propose des coupes, colorations, lissages et soins pour tous les types de cheveux ✂️ Qu'est-ce qui vous intéresserait ? Je vous donne tous les détails !",
	"Je ne suis pas sûr de bien comprendre votre demande 🤔 Mais je peux vous aider avec : nos tarifs, les horaires, la prise de RDV, ou des infos sur nos prestations. Qu'est-ce qui vous intéresse ?",
	"Hmm, pouvez-vous reformuler ? 😊 Je suis expert en tout ce qui touche au salon : coupes, colorations, soins, réservations... Dites-moi ce dont vous avez besoin !",
}
