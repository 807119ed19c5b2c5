package countries

// baseCountries is the built-in table of countries in display order.
// Entries sharing a dial code carry a Priority and, where the number plan
// allows it, the AreaCodes that tell them apart.
var baseCountries = []Country{
	{Name: "Afghanistan", Regions: []Region{Asia}, Code: "af", DialCode: "93"},
	{Name: "Albania", Regions: []Region{Europe}, Code: "al", DialCode: "355"},
	{Name: "Algeria", Regions: []Region{Africa, NorthAfrica}, Code: "dz", DialCode: "213"},
	{Name: "Andorra", Regions: []Region{Europe}, Code: "ad", DialCode: "376"},
	{Name: "Angola", Regions: []Region{Africa}, Code: "ao", DialCode: "244"},
	{Name: "Anguilla", Regions: []Region{America, Caribbean}, Code: "ai", DialCode: "1264"},
	{Name: "Antigua and Barbuda", Regions: []Region{America, Caribbean}, Code: "ag", DialCode: "1268"},
	{Name: "Argentina", Regions: []Region{America, SouthAmerica}, Code: "ar", DialCode: "54", Format: "(00) 00000000", AreaCodes: []string{"11", "221", "223", "261", "264", "2652", "280", "2905", "291", "2920", "2966", "299", "341", "342", "343", "351", "376", "379", "381", "3833", "385", "387", "388"}},
	{Name: "Armenia", Regions: []Region{Asia, ExUSSR}, Code: "am", DialCode: "374", Format: "00 000000"},
	{Name: "Aruba", Regions: []Region{America, Caribbean}, Code: "aw", DialCode: "297"},
	{Name: "Australia", Regions: []Region{Oceania}, Code: "au", DialCode: "61", Format: "(00) 0000 0000", AreaCodes: []string{"2", "3", "4", "7", "8", "02", "03", "04", "07", "08"}},
	{Name: "Austria", Regions: []Region{Europe}, Code: "at", DialCode: "43"},
	{Name: "Azerbaijan", Regions: []Region{Asia, ExUSSR}, Code: "az", DialCode: "994", Format: "(00) 000 00 00"},
	{Name: "Bahamas", Regions: []Region{America, Caribbean}, Code: "bs", DialCode: "1242"},
	{Name: "Bahrain", Regions: []Region{Asia, MiddleEast}, Code: "bh", DialCode: "973"},
	{Name: "Bangladesh", Regions: []Region{Asia}, Code: "bd", DialCode: "880"},
	{Name: "Barbados", Regions: []Region{America, Caribbean}, Code: "bb", DialCode: "1246"},
	{Name: "Belarus", Regions: []Region{Europe, ExUSSR}, Code: "by", DialCode: "375", Format: "(00) 000 00 00"},
	{Name: "Belgium", Regions: []Region{Europe}, Code: "be", DialCode: "32", Format: "000 00 00 00"},
	{Name: "Belize", Regions: []Region{America, CentralAmerica}, Code: "bz", DialCode: "501"},
	{Name: "Benin", Regions: []Region{Africa}, Code: "bj", DialCode: "229"},
	{Name: "Bhutan", Regions: []Region{Asia}, Code: "bt", DialCode: "975"},
	{Name: "Bolivia", Regions: []Region{America, SouthAmerica}, Code: "bo", DialCode: "591"},
	{Name: "Bosnia and Herzegovina", Regions: []Region{Europe, ExYugoslavia}, Code: "ba", DialCode: "387"},
	{Name: "Botswana", Regions: []Region{Africa}, Code: "bw", DialCode: "267"},
	{Name: "Brazil", Regions: []Region{America, SouthAmerica}, Code: "br", DialCode: "55", Format: "(00) 000000000"},
	{Name: "Brunei", Regions: []Region{Asia}, Code: "bn", DialCode: "673"},
	{Name: "Bulgaria", Regions: []Region{Europe}, Code: "bg", DialCode: "359"},
	{Name: "Burkina Faso", Regions: []Region{Africa}, Code: "bf", DialCode: "226"},
	{Name: "Burundi", Regions: []Region{Africa}, Code: "bi", DialCode: "257"},
	{Name: "Cambodia", Regions: []Region{Asia}, Code: "kh", DialCode: "855"},
	{Name: "Cameroon", Regions: []Region{Africa}, Code: "cm", DialCode: "237"},
	{Name: "Canada", Regions: []Region{America, NorthAmerica}, Code: "ca", DialCode: "1", Format: "(000) 000-0000", Priority: 1, AreaCodes: []string{"204", "226", "236", "249", "250", "289", "306", "343", "365", "387", "403", "416", "418", "431", "437", "438", "450", "506", "514", "519", "548", "579", "581", "587", "604", "613", "639", "647", "672", "705", "709", "742", "778", "780", "782", "807", "819", "825", "867", "873", "902", "905"}},
	{Name: "Cape Verde", Regions: []Region{Africa}, Code: "cv", DialCode: "238"},
	{Name: "Central African Republic", Regions: []Region{Africa}, Code: "cf", DialCode: "236"},
	{Name: "Chad", Regions: []Region{Africa}, Code: "td", DialCode: "235"},
	{Name: "Chile", Regions: []Region{America, SouthAmerica}, Code: "cl", DialCode: "56"},
	{Name: "China", Regions: []Region{Asia}, Code: "cn", DialCode: "86", Format: "00-000000000"},
	{Name: "Colombia", Regions: []Region{America, SouthAmerica}, Code: "co", DialCode: "57", Format: "000 000 0000"},
	{Name: "Comoros", Regions: []Region{Africa}, Code: "km", DialCode: "269"},
	{Name: "Costa Rica", Regions: []Region{America, CentralAmerica}, Code: "cr", DialCode: "506", Format: "0000-0000"},
	{Name: "Croatia", Regions: []Region{Europe, ExYugoslavia}, Code: "hr", DialCode: "385"},
	{Name: "Cuba", Regions: []Region{America, Caribbean}, Code: "cu", DialCode: "53"},
	{Name: "Curaçao", Regions: []Region{America, Caribbean}, Code: "cw", DialCode: "599"},
	{Name: "Cyprus", Regions: []Region{Europe}, Code: "cy", DialCode: "357", Format: "00 000000"},
	{Name: "Czech Republic", Regions: []Region{Europe}, Code: "cz", DialCode: "420", Format: "000 000 000"},
	{Name: "Democratic Republic of the Congo", Regions: []Region{Africa}, Code: "cd", DialCode: "243"},
	{Name: "Denmark", Regions: []Region{Europe, Baltic}, Code: "dk", DialCode: "45", Format: "00 00 00 00"},
	{Name: "Djibouti", Regions: []Region{Africa}, Code: "dj", DialCode: "253"},
	{Name: "Dominica", Regions: []Region{America, Caribbean}, Code: "dm", DialCode: "1767"},
	{Name: "Dominican Republic", Regions: []Region{America, Caribbean}, Code: "do", DialCode: "1", Priority: 2, AreaCodes: []string{"809", "829", "849"}},
	{Name: "Ecuador", Regions: []Region{America, SouthAmerica}, Code: "ec", DialCode: "593"},
	{Name: "Egypt", Regions: []Region{Africa, NorthAfrica}, Code: "eg", DialCode: "20"},
	{Name: "El Salvador", Regions: []Region{America, CentralAmerica}, Code: "sv", DialCode: "503", Format: "0000-0000"},
	{Name: "Equatorial Guinea", Regions: []Region{Africa}, Code: "gq", DialCode: "240"},
	{Name: "Eritrea", Regions: []Region{Africa}, Code: "er", DialCode: "291"},
	{Name: "Estonia", Regions: []Region{Europe, Baltic}, Code: "ee", DialCode: "372", Format: "0000 000000"},
	{Name: "Ethiopia", Regions: []Region{Africa}, Code: "et", DialCode: "251"},
	{Name: "Fiji", Regions: []Region{Oceania}, Code: "fj", DialCode: "679"},
	{Name: "Finland", Regions: []Region{Europe, Baltic}, Code: "fi", DialCode: "358", Format: "00 000 00 00"},
	{Name: "France", Regions: []Region{Europe}, Code: "fr", DialCode: "33", Format: "0 00 00 00 00"},
	{Name: "French Guiana", Regions: []Region{America, SouthAmerica}, Code: "gf", DialCode: "594"},
	{Name: "French Polynesia", Regions: []Region{Oceania}, Code: "pf", DialCode: "689"},
	{Name: "Gabon", Regions: []Region{Africa}, Code: "ga", DialCode: "241"},
	{Name: "Gambia", Regions: []Region{Africa}, Code: "gm", DialCode: "220"},
	{Name: "Georgia", Regions: []Region{Asia, ExUSSR}, Code: "ge", DialCode: "995"},
	{Name: "Germany", Regions: []Region{Europe}, Code: "de", DialCode: "49", Format: "0000 00000000"},
	{Name: "Ghana", Regions: []Region{Africa}, Code: "gh", DialCode: "233"},
	{Name: "Greece", Regions: []Region{Europe}, Code: "gr", DialCode: "30"},
	{Name: "Grenada", Regions: []Region{America, Caribbean}, Code: "gd", DialCode: "1473"},
	{Name: "Guadeloupe", Regions: []Region{America, Caribbean}, Code: "gp", DialCode: "590"},
	{Name: "Guam", Regions: []Region{Oceania}, Code: "gu", DialCode: "1671"},
	{Name: "Guatemala", Regions: []Region{America, CentralAmerica}, Code: "gt", DialCode: "502", Format: "0000-0000"},
	{Name: "Guinea", Regions: []Region{Africa}, Code: "gn", DialCode: "224"},
	{Name: "Guinea-Bissau", Regions: []Region{Africa}, Code: "gw", DialCode: "245"},
	{Name: "Guyana", Regions: []Region{America, SouthAmerica}, Code: "gy", DialCode: "592"},
	{Name: "Haiti", Regions: []Region{America, Caribbean}, Code: "ht", DialCode: "509", Format: "0000-0000"},
	{Name: "Honduras", Regions: []Region{America, CentralAmerica}, Code: "hn", DialCode: "504"},
	{Name: "Hong Kong", Regions: []Region{Asia}, Code: "hk", DialCode: "852", Format: "0000 0000"},
	{Name: "Hungary", Regions: []Region{Europe}, Code: "hu", DialCode: "36"},
	{Name: "Iceland", Regions: []Region{Europe}, Code: "is", DialCode: "354", Format: "000 0000"},
	{Name: "India", Regions: []Region{Asia}, Code: "in", DialCode: "91", Format: "00000-00000"},
	{Name: "Indonesia", Regions: []Region{Asia}, Code: "id", DialCode: "62"},
	{Name: "Iran", Regions: []Region{Asia, MiddleEast}, Code: "ir", DialCode: "98", Format: "000 000 0000"},
	{Name: "Iraq", Regions: []Region{Asia, MiddleEast}, Code: "iq", DialCode: "964"},
	{Name: "Ireland", Regions: []Region{Europe}, Code: "ie", DialCode: "353", Format: "00 000 0000"},
	{Name: "Israel", Regions: []Region{Asia, MiddleEast}, Code: "il", DialCode: "972", Format: "000 000 0000"},
	{Name: "Italy", Regions: []Region{Europe}, Code: "it", DialCode: "39", Format: "000 0000000"},
	{Name: "Ivory Coast", Regions: []Region{Africa}, Code: "ci", DialCode: "225", Format: "00 00 00 00"},
	{Name: "Jamaica", Regions: []Region{America, Caribbean}, Code: "jm", DialCode: "1876"},
	{Name: "Japan", Regions: []Region{Asia}, Code: "jp", DialCode: "81", Format: "00 0000 0000"},
	{Name: "Jordan", Regions: []Region{Asia, MiddleEast}, Code: "jo", DialCode: "962"},
	{Name: "Kazakhstan", Regions: []Region{Asia, ExUSSR}, Code: "kz", DialCode: "7", Format: "000 000-00-00", Priority: 1, AreaCodes: []string{"310", "311", "312", "313", "315", "318", "321", "324", "325", "326", "327", "336", "7172", "73622"}},
	{Name: "Kenya", Regions: []Region{Africa}, Code: "ke", DialCode: "254"},
	{Name: "Kiribati", Regions: []Region{Oceania}, Code: "ki", DialCode: "686"},
	{Name: "Kosovo", Regions: []Region{Europe, ExYugoslavia}, Code: "xk", DialCode: "383"},
	{Name: "Kuwait", Regions: []Region{Asia, MiddleEast}, Code: "kw", DialCode: "965"},
	{Name: "Kyrgyzstan", Regions: []Region{Asia, ExUSSR}, Code: "kg", DialCode: "996", Format: "000 000 000"},
	{Name: "Laos", Regions: []Region{Asia}, Code: "la", DialCode: "856"},
	{Name: "Latvia", Regions: []Region{Europe, Baltic}, Code: "lv", DialCode: "371", Format: "00 000 000"},
	{Name: "Lebanon", Regions: []Region{Asia, MiddleEast}, Code: "lb", DialCode: "961"},
	{Name: "Lesotho", Regions: []Region{Africa}, Code: "ls", DialCode: "266"},
	{Name: "Liberia", Regions: []Region{Africa}, Code: "lr", DialCode: "231"},
	{Name: "Libya", Regions: []Region{Africa, NorthAfrica}, Code: "ly", DialCode: "218"},
	{Name: "Liechtenstein", Regions: []Region{Europe}, Code: "li", DialCode: "423"},
	{Name: "Lithuania", Regions: []Region{Europe, Baltic}, Code: "lt", DialCode: "370"},
	{Name: "Luxembourg", Regions: []Region{Europe}, Code: "lu", DialCode: "352"},
	{Name: "Macau", Regions: []Region{Asia}, Code: "mo", DialCode: "853"},
	{Name: "Macedonia", Regions: []Region{Europe, ExYugoslavia}, Code: "mk", DialCode: "389"},
	{Name: "Madagascar", Regions: []Region{Africa}, Code: "mg", DialCode: "261"},
	{Name: "Malawi", Regions: []Region{Africa}, Code: "mw", DialCode: "265"},
	{Name: "Malaysia", Regions: []Region{Asia}, Code: "my", DialCode: "60", Format: "00-0000-0000"},
	{Name: "Maldives", Regions: []Region{Asia}, Code: "mv", DialCode: "960"},
	{Name: "Mali", Regions: []Region{Africa}, Code: "ml", DialCode: "223"},
	{Name: "Malta", Regions: []Region{Europe}, Code: "mt", DialCode: "356"},
	{Name: "Marshall Islands", Regions: []Region{Oceania}, Code: "mh", DialCode: "692"},
	{Name: "Martinique", Regions: []Region{America, Caribbean}, Code: "mq", DialCode: "596"},
	{Name: "Mauritania", Regions: []Region{Africa}, Code: "mr", DialCode: "222"},
	{Name: "Mauritius", Regions: []Region{Africa}, Code: "mu", DialCode: "230"},
	{Name: "Mexico", Regions: []Region{America, CentralAmerica}, Code: "mx", DialCode: "52", Format: "000 000 0000", AreaCodes: []string{"55", "81", "33", "656", "664", "998", "774", "229"}},
	{Name: "Micronesia", Regions: []Region{Oceania}, Code: "fm", DialCode: "691"},
	{Name: "Moldova", Regions: []Region{Europe}, Code: "md", DialCode: "373", Format: "(00) 00-00-00"},
	{Name: "Monaco", Regions: []Region{Europe}, Code: "mc", DialCode: "377"},
	{Name: "Mongolia", Regions: []Region{Asia}, Code: "mn", DialCode: "976"},
	{Name: "Montenegro", Regions: []Region{Europe, ExYugoslavia}, Code: "me", DialCode: "382"},
	{Name: "Morocco", Regions: []Region{Africa, NorthAfrica}, Code: "ma", DialCode: "212"},
	{Name: "Mozambique", Regions: []Region{Africa}, Code: "mz", DialCode: "258"},
	{Name: "Myanmar", Regions: []Region{Asia}, Code: "mm", DialCode: "95"},
	{Name: "Namibia", Regions: []Region{Africa}, Code: "na", DialCode: "264"},
	{Name: "Nauru", Regions: []Region{Oceania}, Code: "nr", DialCode: "674"},
	{Name: "Nepal", Regions: []Region{Asia}, Code: "np", DialCode: "977"},
	{Name: "Netherlands", Regions: []Region{Europe}, Code: "nl", DialCode: "31", Format: "00 00000000"},
	{Name: "Netherlands Antilles", Regions: []Region{America, Caribbean}, Code: "bq", DialCode: "599", Priority: 1},
	{Name: "New Caledonia", Regions: []Region{Oceania}, Code: "nc", DialCode: "687"},
	{Name: "New Zealand", Regions: []Region{Oceania}, Code: "nz", DialCode: "64", Format: "000-000-0000"},
	{Name: "Nicaragua", Regions: []Region{America, CentralAmerica}, Code: "ni", DialCode: "505"},
	{Name: "Niger", Regions: []Region{Africa}, Code: "ne", DialCode: "227"},
	{Name: "Nigeria", Regions: []Region{Africa}, Code: "ng", DialCode: "234"},
	{Name: "North Korea", Regions: []Region{Asia}, Code: "kp", DialCode: "850"},
	{Name: "Norway", Regions: []Region{Europe, Baltic}, Code: "no", DialCode: "47", Format: "000 00 000"},
	{Name: "Oman", Regions: []Region{Asia, MiddleEast}, Code: "om", DialCode: "968"},
	{Name: "Pakistan", Regions: []Region{Asia}, Code: "pk", DialCode: "92", Format: "000-0000000"},
	{Name: "Palau", Regions: []Region{Oceania}, Code: "pw", DialCode: "680"},
	{Name: "Palestine", Regions: []Region{Asia, MiddleEast}, Code: "ps", DialCode: "970"},
	{Name: "Panama", Regions: []Region{America, CentralAmerica}, Code: "pa", DialCode: "507"},
	{Name: "Papua New Guinea", Regions: []Region{Oceania}, Code: "pg", DialCode: "675"},
	{Name: "Paraguay", Regions: []Region{America, SouthAmerica}, Code: "py", DialCode: "595"},
	{Name: "Peru", Regions: []Region{America, SouthAmerica}, Code: "pe", DialCode: "51"},
	{Name: "Philippines", Regions: []Region{Asia}, Code: "ph", DialCode: "63", Format: "0000 0000000"},
	{Name: "Poland", Regions: []Region{Europe, Baltic}, Code: "pl", DialCode: "48", Format: "000-000-000"},
	{Name: "Portugal", Regions: []Region{Europe}, Code: "pt", DialCode: "351"},
	{Name: "Puerto Rico", Regions: []Region{America, Caribbean}, Code: "pr", DialCode: "1", Priority: 3, AreaCodes: []string{"787", "939"}},
	{Name: "Qatar", Regions: []Region{Asia, MiddleEast}, Code: "qa", DialCode: "974"},
	{Name: "Republic of the Congo", Regions: []Region{Africa}, Code: "cg", DialCode: "242"},
	{Name: "Réunion", Regions: []Region{Africa}, Code: "re", DialCode: "262"},
	{Name: "Romania", Regions: []Region{Europe}, Code: "ro", DialCode: "40"},
	{Name: "Russia", Regions: []Region{Europe, Asia, ExUSSR, Baltic}, Code: "ru", DialCode: "7", Format: "(000) 000-00-00"},
	{Name: "Rwanda", Regions: []Region{Africa}, Code: "rw", DialCode: "250"},
	{Name: "Saint Kitts and Nevis", Regions: []Region{America, Caribbean}, Code: "kn", DialCode: "1869"},
	{Name: "Saint Lucia", Regions: []Region{America, Caribbean}, Code: "lc", DialCode: "1758"},
	{Name: "Saint Vincent and the Grenadines", Regions: []Region{America, Caribbean}, Code: "vc", DialCode: "1784"},
	{Name: "Samoa", Regions: []Region{Oceania}, Code: "ws", DialCode: "685"},
	{Name: "San Marino", Regions: []Region{Europe}, Code: "sm", DialCode: "378"},
	{Name: "São Tomé and Príncipe", Regions: []Region{Africa}, Code: "st", DialCode: "239"},
	{Name: "Saudi Arabia", Regions: []Region{Asia, MiddleEast}, Code: "sa", DialCode: "966"},
	{Name: "Senegal", Regions: []Region{Africa}, Code: "sn", DialCode: "221"},
	{Name: "Serbia", Regions: []Region{Europe, ExYugoslavia}, Code: "rs", DialCode: "381"},
	{Name: "Seychelles", Regions: []Region{Africa}, Code: "sc", DialCode: "248"},
	{Name: "Sierra Leone", Regions: []Region{Africa}, Code: "sl", DialCode: "232"},
	{Name: "Singapore", Regions: []Region{Asia}, Code: "sg", DialCode: "65", Format: "0000-0000"},
	{Name: "Slovakia", Regions: []Region{Europe}, Code: "sk", DialCode: "421"},
	{Name: "Slovenia", Regions: []Region{Europe, ExYugoslavia}, Code: "si", DialCode: "386"},
	{Name: "Solomon Islands", Regions: []Region{Oceania}, Code: "sb", DialCode: "677"},
	{Name: "Somalia", Regions: []Region{Africa}, Code: "so", DialCode: "252"},
	{Name: "South Africa", Regions: []Region{Africa}, Code: "za", DialCode: "27"},
	{Name: "South Korea", Regions: []Region{Asia}, Code: "kr", DialCode: "82", Format: "000 0000 0000"},
	{Name: "South Sudan", Regions: []Region{Africa, NorthAfrica}, Code: "ss", DialCode: "211"},
	{Name: "Spain", Regions: []Region{Europe}, Code: "es", DialCode: "34", Format: "000 000 000"},
	{Name: "Sri Lanka", Regions: []Region{Asia}, Code: "lk", DialCode: "94"},
	{Name: "Sudan", Regions: []Region{Africa}, Code: "sd", DialCode: "249"},
	{Name: "Suriname", Regions: []Region{America, SouthAmerica}, Code: "sr", DialCode: "597"},
	{Name: "Swaziland", Regions: []Region{Africa}, Code: "sz", DialCode: "268"},
	{Name: "Sweden", Regions: []Region{Europe, Baltic}, Code: "se", DialCode: "46", Format: "(000) 000-000"},
	{Name: "Switzerland", Regions: []Region{Europe}, Code: "ch", DialCode: "41", Format: "00 000 00 00"},
	{Name: "Syria", Regions: []Region{Asia, MiddleEast}, Code: "sy", DialCode: "963"},
	{Name: "Taiwan", Regions: []Region{Asia}, Code: "tw", DialCode: "886"},
	{Name: "Tajikistan", Regions: []Region{Asia, ExUSSR}, Code: "tj", DialCode: "992"},
	{Name: "Tanzania", Regions: []Region{Africa}, Code: "tz", DialCode: "255"},
	{Name: "Thailand", Regions: []Region{Asia}, Code: "th", DialCode: "66"},
	{Name: "Timor-Leste", Regions: []Region{Asia}, Code: "tl", DialCode: "670"},
	{Name: "Togo", Regions: []Region{Africa}, Code: "tg", DialCode: "228"},
	{Name: "Tonga", Regions: []Region{Oceania}, Code: "to", DialCode: "676"},
	{Name: "Trinidad and Tobago", Regions: []Region{America, Caribbean}, Code: "tt", DialCode: "1868"},
	{Name: "Tunisia", Regions: []Region{Africa, NorthAfrica}, Code: "tn", DialCode: "216"},
	{Name: "Turkey", Regions: []Region{Europe}, Code: "tr", DialCode: "90", Format: "000 000 00 00"},
	{Name: "Turkmenistan", Regions: []Region{Asia, ExUSSR}, Code: "tm", DialCode: "993"},
	{Name: "Tuvalu", Regions: []Region{Oceania}, Code: "tv", DialCode: "688"},
	{Name: "Uganda", Regions: []Region{Africa}, Code: "ug", DialCode: "256"},
	{Name: "Ukraine", Regions: []Region{Europe, ExUSSR}, Code: "ua", DialCode: "380", Format: "(00) 000 00 00"},
	{Name: "United Arab Emirates", Regions: []Region{Asia, MiddleEast}, Code: "ae", DialCode: "971"},
	{Name: "United Kingdom", Regions: []Region{Europe}, Code: "gb", DialCode: "44", Format: "0000 000000", Priority: 1},
	{Name: "United States", Regions: []Region{America, NorthAmerica}, Code: "us", DialCode: "1", Format: "(000) 000-0000"},
	{Name: "Uruguay", Regions: []Region{America, SouthAmerica}, Code: "uy", DialCode: "598"},
	{Name: "Uzbekistan", Regions: []Region{Asia, ExUSSR}, Code: "uz", DialCode: "998", Format: "00 000 00 00"},
	{Name: "Vanuatu", Regions: []Region{Oceania}, Code: "vu", DialCode: "678"},
	{Name: "Vatican City", Regions: []Region{Europe}, Code: "va", DialCode: "39", Format: "00 0000 0000", Priority: 1},
	{Name: "Venezuela", Regions: []Region{America, SouthAmerica}, Code: "ve", DialCode: "58"},
	{Name: "Vietnam", Regions: []Region{Asia}, Code: "vn", DialCode: "84"},
	{Name: "Yemen", Regions: []Region{Asia, MiddleEast}, Code: "ye", DialCode: "967"},
	{Name: "Zambia", Regions: []Region{Africa}, Code: "zm", DialCode: "260"},
	{Name: "Zimbabwe", Regions: []Region{Africa}, Code: "zw", DialCode: "263"},
}

// baseTerritories lists dependent territories that are only offered when
// territories are explicitly included.
var baseTerritories = []Country{
	{Name: "American Samoa", Regions: []Region{Oceania}, Code: "as", DialCode: "1684"},
	{Name: "Anguilla", Regions: []Region{America, Caribbean}, Code: "ai", DialCode: "1264"},
	{Name: "Bermuda", Regions: []Region{America, NorthAmerica}, Code: "bm", DialCode: "1441"},
	{Name: "British Indian Ocean Territory", Regions: []Region{Asia}, Code: "io", DialCode: "246"},
	{Name: "British Virgin Islands", Regions: []Region{America, Caribbean}, Code: "vg", DialCode: "1284"},
	{Name: "Cayman Islands", Regions: []Region{America, Caribbean}, Code: "ky", DialCode: "1345"},
	{Name: "Cook Islands", Regions: []Region{Oceania}, Code: "ck", DialCode: "682"},
	{Name: "Falkland Islands", Regions: []Region{America, SouthAmerica}, Code: "fk", DialCode: "500"},
	{Name: "Faroe Islands", Regions: []Region{Europe}, Code: "fo", DialCode: "298"},
	{Name: "Gibraltar", Regions: []Region{Europe}, Code: "gi", DialCode: "350"},
	{Name: "Greenland", Regions: []Region{America}, Code: "gl", DialCode: "299"},
	{Name: "Jersey", Regions: []Region{Europe}, Code: "je", DialCode: "44", Format: "0000 000000"},
	{Name: "Montserrat", Regions: []Region{America, Caribbean}, Code: "ms", DialCode: "1664"},
	{Name: "Niue", Regions: []Region{Asia}, Code: "nu", DialCode: "683"},
	{Name: "Norfolk Island", Regions: []Region{Oceania}, Code: "nf", DialCode: "672"},
	{Name: "Northern Mariana Islands", Regions: []Region{Oceania}, Code: "mp", DialCode: "1670"},
	{Name: "Saint Barthélemy", Regions: []Region{America, Caribbean}, Code: "bl", DialCode: "590", Priority: 1},
	{Name: "Saint Helena", Regions: []Region{Africa}, Code: "sh", DialCode: "290"},
	{Name: "Saint Martin", Regions: []Region{America, Caribbean}, Code: "mf", DialCode: "590", Priority: 2},
	{Name: "Saint Pierre and Miquelon", Regions: []Region{America, NorthAmerica}, Code: "pm", DialCode: "508"},
	{Name: "Sint Maarten", Regions: []Region{America, Caribbean}, Code: "sx", DialCode: "1721"},
	{Name: "Tokelau", Regions: []Region{Oceania}, Code: "tk", DialCode: "690"},
	{Name: "Turks and Caicos Islands", Regions: []Region{America, Caribbean}, Code: "tc", DialCode: "1649"},
	{Name: "U.S. Virgin Islands", Regions: []Region{America, Caribbean}, Code: "vi", DialCode: "1340"},
	{Name: "Wallis and Futuna", Regions: []Region{Oceania}, Code: "wf", DialCode: "681"},
}
